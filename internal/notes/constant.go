package notes

const (
	// Header is the first line of every ledger.
	Header = "🗒️ SCCSE Notes Log"

	headerMark  = "🗒️"
	EntryPrefix = "- "
)

const (
	BackendFile  = "file"
	BackendMemos = "memos"
)
