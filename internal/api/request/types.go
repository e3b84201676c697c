package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateMinefieldRequest is the request body for starting a minefield.
// A non-empty Preset takes precedence over explicit dimensions.
type CreateMinefieldRequest struct {
	Preset string `json:"preset,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Mines  int    `json:"mines,omitempty"`
}

// CellRequest addresses one square of a board
type CellRequest struct {
	Index *int `json:"index"`
}

// SelectPuzzleRequest is the request body for choosing the current cryptogram
type SelectPuzzleRequest struct {
	Index *int `json:"index"`
}

// EnterLetterRequest is the request body for guessing a cryptogram letter.
// An empty Letter clears the guess.
type EnterLetterRequest struct {
	Substituted string `json:"substituted"`
	Letter      string `json:"letter"`
	Position    int    `json:"position"`
}

// CreateTicTacToeRequest is the request body for starting a tic-tac-toe game
type CreateTicTacToeRequest struct {
	Width int `json:"width,omitempty"`
}

// JumpRequest is the request body for viewing a step of the move history
type JumpRequest struct {
	Step *int `json:"step"`
}
