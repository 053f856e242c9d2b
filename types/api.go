package types

// APIResponse is the standard envelope for all JSON endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{Success: true, Data: data}
}

func NewErrorResponse(code, message string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	}
}

// ListResponse wraps a page of items together with the pagination rendering
// plan so clients never re-implement the windowing rule.
type ListResponse struct {
	Items      interface{}    `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Pagination PaginationPlan `json:"pagination"`
}

// NewListResponse assembles a paginated listing payload from a canonical
// query descriptor and the store's total count.
func NewListResponse(items interface{}, total int, d QueryDescriptor) ListResponse {
	return ListResponse{
		Items:      items,
		Total:      total,
		Page:       d.Page,
		PageSize:   d.PageSize,
		Pagination: BuildPaginationPlan(total, d.Page, d.PageSize, DefaultSiblingCount),
	}
}

// Common error codes
const (
	ErrorCodeValidation     = "VALIDATION_ERROR"
	ErrorCodeUnauthorized   = "UNAUTHORIZED"
	ErrorCodeForbidden      = "FORBIDDEN"
	ErrorCodeNotFound       = "NOT_FOUND"
	ErrorCodeConflict       = "CONFLICT"
	ErrorCodeInternal       = "INTERNAL_ERROR"
	ErrorCodeInvalidRequest = "INVALID_REQUEST"
)
