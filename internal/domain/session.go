package domain

import "time"

// Session holds every piece of mutable state owned by one authenticated user.
// It is created at login/registration and destroyed wholesale at logout; there
// is no persistence behind it.
type Session struct {
	ID               string
	User             User
	Account          Account
	Card             *Card
	Beneficiaries    []Beneficiary
	Transactions     []Transaction
	TelecomFavorites []TelecomFavorite
	CreatedAt        time.Time
}

// Clone deep-copies the session so snapshots handed out by the store cannot
// alias live state.
func (s Session) Clone() Session {
	out := s
	if s.Card != nil {
		card := *s.Card
		out.Card = &card
	}
	out.Beneficiaries = append([]Beneficiary(nil), s.Beneficiaries...)
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.TelecomFavorites = append([]TelecomFavorite(nil), s.TelecomFavorites...)
	return out
}
