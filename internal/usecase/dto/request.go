package dto

// SyncPlaceRequest - запрос одиночной синхронизации.
// Достаточно одного из полей; place_id имеет приоритет.
type SyncPlaceRequest struct {
	PlaceID string `json:"place_id" validate:"required_without=Lookup"`
	Lookup  string `json:"lookup" validate:"required_without=PlaceID"`
}

// GetPlaceRequest - запрос чтения места с проверкой свежести
type GetPlaceRequest struct {
	PlaceID string `json:"place_id" validate:"required"`
	Lookup  string `json:"lookup"`
}
