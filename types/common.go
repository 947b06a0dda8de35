package types

// PageQuery is the optional ?limit=&offset= pair accepted by list endpoints.
// A zero limit returns everything.
type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
