package dto

type CredentialsDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"s3cret-passw0rd"`
}

type RegisterRequestDTO = CredentialsDTO

type LoginRequestDTO = CredentialsDTO

// AuthResponseDTO is returned by register and login. The bearer token is
// sent in the Authorization header as well.
type AuthResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
	Login   string `json:"login" example:"alice"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
