package gamedata

// Error message formats for table loading
const (
	ErrMsgReadTablesFailed   = "failed to read game tables %s: %w"
	ErrMsgParseTablesFailed  = "failed to parse game tables %s: %w"
	ErrMsgInvalidTables      = "invalid game tables: %w"
	ErrMsgInvalidSearchEntry = "invalid search loot entry %q (qty %d)"
)
