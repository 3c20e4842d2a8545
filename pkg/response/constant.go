package response

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404

	DefaultErrorMessage = "Internal server error"
)
