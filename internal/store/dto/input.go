package dto

type CreateStoreInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
