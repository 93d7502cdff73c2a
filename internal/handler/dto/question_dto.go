package dto

// PoolLevelResponse — количество вопросов на уровне
type PoolLevelResponse struct {
	Level int   `json:"level"`
	Count int64 `json:"count"`
}

// PoolStatsResponse — заполненность пула вопросов
type PoolStatsResponse struct {
	Levels []PoolLevelResponse `json:"levels"`
	// Ready — на каждом уровне есть хотя бы один вопрос
	Ready bool `json:"ready"`
}
