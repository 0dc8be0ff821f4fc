package domain

import "time"

// ViewState representa uma visão montada e o modo corrente
type ViewState struct {
	ID        string      `json:"id"`
	Mode      DisplayMode `json:"mode"`
	AxisKey   string      `json:"axis_key"`
	MountedAt time.Time   `json:"mounted_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
