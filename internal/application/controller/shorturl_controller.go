package controller

import (
	"errors"
	"net/http"

	"go-shortener/internal/application/publisher"
	"go-shortener/internal/domain/model"
	"go-shortener/internal/domain/usecase/shorturl"
	"go-shortener/pkg/log"
	"go-shortener/pkg/msg"
	"go-shortener/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type ShortUrlController struct {
	api       *echo.Group
	useCase   shorturl.UseCase
	publisher *publisher.ShortUrlPublisher
}

func NewShortUrlController(api *echo.Group, useCase shorturl.UseCase, publisher *publisher.ShortUrlPublisher) *ShortUrlController {
	return &ShortUrlController{api: api, useCase: useCase, publisher: publisher}
}

// InitShortUrlRoutes initializes short url routes
func (controller *ShortUrlController) InitShortUrlRoutes() {
	controller.api.POST("/short-url", controller.Create)
	controller.api.GET("/short-url/:shortCode/qr-code", controller.QrCode)
}

// Create godoc
// @Summary Create a short URL
// @Description Creates (or finds) the short URL of longUrl on the shortener and derives its QR code URL
// @Tags short-url
// @Accept json
// @Produce json
// @Param shortUrl body model.CreateShortUrlRequest true "Short URL creation data"
// @Success 201 {object} model.CreateShortUrlResponse "Created short URL"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 502 {object} map[string]string "Shortener request failed"
// @Failure 503 {object} map[string]string "Shortener not configured"
// @Router /short-url [post]
func (controller *ShortUrlController) Create(c echo.Context) error {
	var request model.CreateShortUrlRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	ctx := c.Request().Context()
	result, err := controller.useCase.CreateShortUrl(ctx, model.CreateShortUrlDTO{
		LongUrl: request.LongUrl,
		Slug:    request.Slug,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	response := model.CreateShortUrlResponse{
		ShortUrl:  result.ShortUrl,
		ShortCode: result.ShortCode,
	}

	// a missing short code or invalid QR options leave the created short URL without a QR code
	if request.GenerateQrCode == nil || *request.GenerateQrCode {
		options := request.QrCode.Apply(controller.useCase.DefaultQrCodeOptions())
		if qrCodeUrl, err := controller.useCase.BuildQrCodeUrl(result.ShortCode, options); err == nil {
			response.QrCodeUrl = qrCodeUrl
		} else {
			log.Warn(msg.GetMessage("short-url.qr-code.skipped", result.ShortUrl, err))
		}
	}

	// Publish logs its own failures; they never undo the creation
	controller.publisher.Publish(ctx, request.LongUrl, *result, response.QrCodeUrl)

	return c.JSON(http.StatusCreated, response)
}

// QrCode godoc
// @Summary Get the QR code image of a short URL
// @Description Fetches the rendered QR code of shortCode, using the configured defaults for omitted options
// @Tags short-url
// @Produce png
// @Param shortCode path string true "Short code"
// @Param bgColor query string false "Background color"
// @Param color query string false "Foreground color"
// @Param errorCorrection query string false "Error correction level (L, M, Q, H)"
// @Param margin query int false "Margin in pixels"
// @Param size query int false "Size in pixels"
// @Param logo query string false "default or disable"
// @Param logoUrl query string false "External logo URL"
// @Success 200 {file} binary "QR code PNG"
// @Failure 400 {object} map[string]string "Invalid QR code options"
// @Failure 502 {object} map[string]string "QR code fetch failed"
// @Router /short-url/{shortCode}/qr-code [get]
func (controller *ShortUrlController) QrCode(c echo.Context) error {
	options := qrCodeOverridesFromQuery(c).Apply(controller.useCase.DefaultQrCodeOptions())

	qrCodeUrl, err := controller.useCase.BuildQrCodeUrl(c.Param("shortCode"), options)
	if err != nil {
		return errorResponse(c, err)
	}

	image, err := controller.useCase.FetchQrImage(c.Request().Context(), qrCodeUrl)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", image)
}

func qrCodeOverridesFromQuery(c echo.Context) model.QrCodeOverrides {
	overrides := model.QrCodeOverrides{
		BackgroundColor: c.QueryParam("bgColor"),
		ForegroundColor: c.QueryParam("color"),
		ErrorCorrection: c.QueryParam("errorCorrection"),
		Logo:            c.QueryParam("logo"),
		LogoUrl:         c.QueryParam("logoUrl"),
	}
	if raw := c.QueryParam("margin"); raw != "" {
		margin := numberutils.ToIntWithDefault(raw, -1)
		overrides.Margin = &margin
	}
	if raw := c.QueryParam("size"); raw != "" {
		size := numberutils.ToIntWithDefault(raw, 0)
		overrides.Size = &size
	}
	return overrides
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, shorturl.ErrMissingConfiguration):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error":   msg.GetMessage("short-url.config.invalid"),
			"message": msg.GetMessage("short-url.config.invalid-detail"),
		})
	case errors.Is(err, shorturl.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":   msg.GetMessage("short-url.input.invalid"),
			"message": msg.GetMessage("short-url.input.invalid-detail", err),
		})
	case errors.Is(err, shorturl.ErrImageFetchFailure):
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": msg.GetMessage("short-url.qr-code.fetch-failure"),
		})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error":   msg.GetMessage("short-url.create.failure"),
			"message": msg.GetMessage("short-url.create.failure-detail"),
		})
	}
}
