package users

// Account is a stored user together with its password hash.
// Only the fake API keeps accounts; the client never sees a hash.
type Account struct {
	User
	PasswordHash string `json:"-"`
}

type Repo interface {
	Insert(account *Account) error
	GetByEmail(email string) (*Account, error)
	GetByID(id int64) (*Account, error)
	UpdateProfile(id int64, profile ProfileUpdate) error
}
