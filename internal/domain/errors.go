package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                 = errors.New("recurso no encontrado")
	ErrInvalidInput             = errors.New("entrada inválida")
	ErrInvalidNumber            = errors.New("valor numérico inválido")
	ErrUnknownField             = errors.New("campo desconocido")
	ErrLineItemOutOfRange       = errors.New("posición de ítem fuera de rango")
	ErrUnsupportedSignatureType = errors.New("tipo de imagen de firma no soportado")
	ErrSignatureTooLarge        = errors.New("imagen de firma demasiado grande")
)

// SignatureTypeMessage es el texto que ve el usuario cuando sube una firma con un tipo no permitido.
const SignatureTypeMessage = "Please upload an image file (PNG, JPG, or JPEG)"
