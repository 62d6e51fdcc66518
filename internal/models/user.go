package models

// User - учетная запись, хеш пароля наружу не отдается
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Credentials - тело запросов регистрации и входа.
// Поле password_hash исторически содержит пароль в открытом виде.
type Credentials struct {
	Email        string `json:"email" binding:"required"`
	PasswordHash string `json:"password_hash" binding:"required"`
}

type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
