package devapi

import "context"

// DefaultSpecies is the reference list a fresh database starts with.
var DefaultSpecies = []string{
	"Achigan à grande bouche",
	"Achigan à petite bouche",
	"Barbotte brune",
	"Brochet du Nord",
	"Crapet-soleil",
	"Doré jaune",
	"Esturgeon jaune",
	"Maskinongé",
	"Omble de fontaine",
	"Perchaude",
	"Saumon atlantique",
	"Touladi",
	"Truite arc-en-ciel",
	"Truite brune",
}

// Seed creates the account and the species list. Running it again updates
// the password and leaves existing species alone.
func (s *Store) Seed(ctx context.Context, email, password string) error {
	if err := s.AddSpecies(ctx, DefaultSpecies...); err != nil {
		return err
	}
	if email == "" {
		return nil
	}
	return s.AddUser(ctx, email, password)
}
