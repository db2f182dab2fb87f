// Package record generates synthetic user/company profile records used as
// benchmark input. Generation draws from an explicit math/rand/v2 source so
// runs can be reproduced with a seed.
package record

// Record is one synthesized profile.
type Record struct {
	Metadata    Metadata    `json:"metadata"`
	Profile     Profile     `json:"profile"`
	Work        Work        `json:"work"`
	About       string      `json:"about"`
	Preferences Preferences `json:"preferences"`
}

// Metadata holds the positional and identifying fields of a record.
type Metadata struct {
	ID        int    `json:"id"`
	UUID      string `json:"uuid"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type Profile struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
	IsActive bool    `json:"isActive"`
	Balance  float64 `json:"balance"`
}

type Address struct {
	Street      string      `json:"street"`
	City        string      `json:"city"`
	PostalCode  string      `json:"postal_code"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Work struct {
	Company    string   `json:"company"`
	Department string   `json:"department"`
	Role       string   `json:"role"`
	Salary     int      `json:"salary"`
	Tags       []string `json:"tags"`
}

type Preferences struct {
	Notifications Notifications `json:"notifications"`
	Theme         string        `json:"theme"`
	Language      string        `json:"language"`
}

type Notifications struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}
