package dto

// LoginForm binds the login form
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ReactionForm binds the like/dislike form; only +1 and -1 are admitted
type ReactionForm struct {
	Value int `form:"value" binding:"required,oneof=1 -1"`
}
