package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-builder/internal/infrastructure/metrics"
	"github.com/jhoicas/invoice-builder/pkg/logger"
)

// AccessLog registra cada petición con método, ruta, estado y latencia.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}

// Metrics alimenta los colectores HTTP: total por método/ruta/estado, latencia y peticiones en curso.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		start := time.Now()
		err := c.Next()
		// La ruta registrada (con :id) mantiene acotada la cardinalidad de las etiquetas.
		route := c.Route().Path
		m.ReqTotal.WithLabelValues(c.Method(), route, strconv.Itoa(responseStatus(c, err))).Inc()
		m.ReqDur.WithLabelValues(c.Method(), route).Observe(metrics.DurationMillis(time.Since(start)))
		return err
	}
}

// El ErrorHandler de fiber corre después de los middlewares: si el handler devolvió un
// error el estado todavía no está escrito en la respuesta.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
