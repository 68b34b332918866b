package domain

// Account is a registered identity. Email is stored lowercased and is the account's unique key.
// Passwords are kept in plaintext.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the part of an account that is safe to show.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a Account) Identity() Identity {
	return Identity{
		Name:  a.Name,
		Email: a.Email,
	}
}
