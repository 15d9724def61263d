package dtos

import "github.com/yeremiapane/restaurant-api/models"

type CreateDiningTableRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Reserved bool   `json:"reserved"`
	Chairs   int    `json:"chairs" binding:"gte=0"`
}

func (r CreateDiningTableRequest) ToModel() models.DiningTable {
	return models.DiningTable{Name: r.Name, Reserved: r.Reserved, Chairs: r.Chairs}
}

type UpdateDiningTableRequest struct {
	ID uint `json:"id" binding:"required"`
	CreateDiningTableRequest
}

func (r UpdateDiningTableRequest) ToModel() models.DiningTable {
	table := r.CreateDiningTableRequest.ToModel()
	table.ID = r.ID
	return table
}
