package skill

// DefaultMap is used for any category left empty in configuration.
var DefaultMap = Map{
	Tech: []string{
		"python", "java", "c++", "coding", "programming",
		"machine learning", "ml", "ai", "deeplearning",
		"web dev", "web development", "backend", "frontend",
		"data analysis", "data science", "algorithm",
		"dsa", "problem solving", "cloud", "docker",
	},
	Design: []string{
		"figma", "ui", "ux", "graphic design", "illustration",
		"photoshop", "canva", "poster", "banner", "logo",
		"video editing", "editing", "premiere pro", "after effects",
	},
	PR: []string{
		"communication", "public speaking", "convincing",
		"talking to strangers", "teamwork", "leadership",
		"event management", "content writing", "storytelling",
		"social media", "marketing", "negotiation",
		"presentation", "anchoring", "community building",
	},
}
