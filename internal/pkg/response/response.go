package response

import "github.com/gofiber/fiber/v3"

// MessageBody is the flat error/confirmation shape of the API. The original
// contract mixed "message" and a misspelled "mesage"; this backend settles
// on "message" everywhere.
type MessageBody struct {
	Message string `json:"message"`
}

const (
	MessageBadRequest          = "Requisição inválida."
	MessageNotFound            = "Registro não encontrado na base :/"
	MessageInternalServerError = "Ocorreu um erro interno no servidor."
)

func Message(c fiber.Ctx, status int, message string) error {
	if message == "" {
		message = defaultMessageForStatus(status)
	}
	return c.Status(status).JSON(MessageBody{Message: message})
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}
