package domain

// Perfil é o papel do usuário no sistema.
type Perfil string

const (
	PerfilAdmin     Perfil = "admin"
	PerfilAtendente Perfil = "atendente"
)

// Valid indica se o perfil é conhecido.
func (p Perfil) Valid() bool {
	return p == PerfilAdmin || p == PerfilAtendente
}

// User é o snapshot do usuário autenticado devolvido por /token e /me.
type User struct {
	ID     int    `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil Perfil `json:"perfil"`
}

// IsAdmin indica se o usuário tem perfil de administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Perfil == PerfilAdmin
}

// UserUpdate é um merge parcial aplicado ao snapshot local após editar o perfil.
// Campos nil não são alterados.
type UserUpdate struct {
	Nome   *string `json:"nome,omitempty"`
	Email  *string `json:"email,omitempty"`
	Perfil *Perfil `json:"perfil,omitempty"`
}

// Apply devolve uma cópia de u com os campos de upd aplicados.
func (upd UserUpdate) Apply(u User) User {
	if upd.Nome != nil {
		u.Nome = *upd.Nome
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Perfil != nil {
		u.Perfil = *upd.Perfil
	}
	return u
}

// ProfileInput é o payload de PUT /me.
type ProfileInput struct {
	Nome     string `json:"nome,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Registration é o payload de /register, /register-admin e /register-atendente.
// Perfil só é respeitado em /register-admin.
type Registration struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Perfil   Perfil `json:"perfil,omitempty"`
}

// TokenResponse é a resposta de POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// SessionState é o estado observável da sessão.
// Token é vazio sempre que User é nil.
type SessionState struct {
	User    *User
	Token   string
	Loading bool
}

// Authenticated indica uma sessão resolvida com usuário.
func (s SessionState) Authenticated() bool {
	return !s.Loading && s.User != nil
}
