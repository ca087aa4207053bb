package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 内容模块错误 400xx
	ErrNotFound = 40004

	// 系统错误 500xx
	ErrServerInternal = 50001
	ErrInvalidParam   = 50002
)
