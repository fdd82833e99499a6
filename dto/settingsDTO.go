package dto

import "myday/model"

type SaveEventTypesRequest struct {
	Types []model.EventType `json:"types" binding:"required"`
}

type SaveEventCategoriesRequest struct {
	Categories []model.EventCategory `json:"categories" binding:"required"`
}

type SaveRepeatOptionsRequest struct {
	Repeats []model.RepeatOption `json:"repeats" binding:"required"`
}

type SaveGeneralSettingsRequest struct {
	General model.GeneralSettings `json:"general" binding:"required"`
}
