package model

// ToggleResult 点赞切换后的计数与访客状态
type ToggleResult struct {
	Likes int64 `json:"likes"`
	Liked bool  `json:"liked"`
}
