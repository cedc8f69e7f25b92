package dto

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ScreenRequest represents a request naming a table screen
type ScreenRequest struct {
	Screen string `uri:"screen" binding:"required,max=32"`
}
