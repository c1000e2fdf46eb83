package model

type Store struct {
	BaseModel
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
}
