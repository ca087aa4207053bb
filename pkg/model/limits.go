package model

// 访客提交文本的长度上限（按字符计）
const (
	NameMaxLen    = 60
	ContentMaxLen = 2000
)
