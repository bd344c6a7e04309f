package types

// CreateRoomRequest describes a new room. Empty fields take the hub defaults.
type CreateRoomRequest struct {
	Mode       string `json:"mode" binding:"omitempty,oneof=ai pvp"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}
