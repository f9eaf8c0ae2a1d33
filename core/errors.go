package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 摄入阶段的单条记录错误在批处理内部消化（见 index.BatchResult），
//     查询阶段的错误通过 DomainError 上抛给调用方
//
// 使用场景：
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED, UNAVAILABLE
//   - 查询错误：INVALID_QUERY（limit <= 0）、TIMEOUT（时间/工作量预算超限）
type DomainError struct {
	Code    string // 错误代码（如 "INVALID_QUERY", "TIMEOUT"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "index", "service"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil。
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound     = "NOT_FOUND"     // 资源不存在
	ErrorCodeNotSupported = "NOT_SUPPORTED" // 操作不支持
	ErrorCodeUnavailable  = "UNAVAILABLE"   // 索引存储不可达（可重试）
	ErrorCodeInvalidQuery = "INVALID_QUERY" // 查询参数无效
	ErrorCodeTimeout      = "TIMEOUT"       // 时间或工作量预算超限
)

// 模块名称常量
const (
	ModuleStore   = "store"   // 存储模块
	ModuleIndex   = "index"   // 索引构建模块
	ModuleService = "service" // 查询服务模块
)

// 预定义错误
var (
	// ErrInvalidQuery 表示查询参数无效（limit <= 0）
	ErrInvalidQuery = NewDomainError(ModuleService, ErrorCodeInvalidQuery, "service: limit must be positive")

	// ErrStoreUnavailable 表示查询期间索引存储不可达。
	// 必须上抛而不是静默返回空列表，避免调用方把"没有数据"和"取不到数据"混为一谈。
	ErrStoreUnavailable = NewDomainError(ModuleStore, ErrorCodeUnavailable, "store: index storage unavailable")

	// ErrQueryTimeout 表示推荐查询超出时间或工作量预算
	// （例如某个高热关键词导致的病态扇出）。
	ErrQueryTimeout = NewDomainError(ModuleService, ErrorCodeTimeout, "service: query budget exceeded")
)

// IsNotFound 检查错误是否为 NOT_FOUND。
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeNotFound)
}

// IsInvalidQuery 检查错误是否为 INVALID_QUERY。
func IsInvalidQuery(err error) bool {
	return hasCode(err, ErrorCodeInvalidQuery)
}

// IsUnavailable 检查错误是否为 UNAVAILABLE。
func IsUnavailable(err error) bool {
	return hasCode(err, ErrorCodeUnavailable)
}

// IsTimeout 检查错误是否为 TIMEOUT。
func IsTimeout(err error) bool {
	return hasCode(err, ErrorCodeTimeout)
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}
