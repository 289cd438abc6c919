package skill

// Category is a team a user can be recommended to.
type Category string

const (
	CategoryNone   Category = ""
	CategoryTech   Category = "tech"
	CategoryDesign Category = "design"
	CategoryPR     Category = "pr"
)

// Origin says where the skill evidence was found.
type Origin string

const (
	OriginNone    Origin = "none"
	OriginMemory  Origin = "memory"
	OriginSummary Origin = "summary"
)

// Map holds the keyword triggers of each category.
type Map struct {
	Tech   []string `mapstructure:"tech"`
	Design []string `mapstructure:"design"`
	PR     []string `mapstructure:"pr"`
}
