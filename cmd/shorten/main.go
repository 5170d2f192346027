// Command shorten creates a short URL and, optionally, fetches and saves its QR code.
//
//	shorten -url https://example.com [-slug my-slug] [-qr=false]
//	        [-bg #ffffff] [-color #000000] [-error-correction L] [-margin 25] [-size 300]
//	        [-logo default|disable] [-logo-url https://...] [-markdown]
//
// Shortener settings come from application properties (SHORTENER_HOST, SHORTENER_API_KEY, ...)
// and can be overridden with -protocol, -host and -api-key.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	_ "go-shortener/configs"
	"go-shortener/internal/application/bootstrap"
	"go-shortener/internal/domain/model"
	"go-shortener/internal/domain/usecase/shorturl"
	"go-shortener/pkg/log"
	"go-shortener/pkg/msg"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

type cliFlags struct {
	longUrl        string
	slug           string
	generateQrCode bool
	saveImage      bool
	markdown       bool
	logLevel       string

	protocol  string
	host      string
	apiKey    string
	qrBaseURL string

	qrCode model.QrCodeOverrides
	margin int
	size   int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	log.Sync()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("shorten", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.longUrl, "url", "", "URL to shorten (required)")
	fs.StringVar(&f.slug, "slug", "", "optional custom slug")
	fs.BoolVar(&f.generateQrCode, "qr", true, "generate a QR code")
	fs.BoolVar(&f.saveImage, "save", true, "save the QR code image to a temporary file")
	fs.BoolVar(&f.markdown, "markdown", false, "print the result as markdown with the inline QR image")
	fs.StringVar(&f.logLevel, "log-level", "", "log level written to stderr: debug, info, warn or error (default LOG_LEVEL or info)")

	fs.StringVar(&f.protocol, "protocol", "", "shortener protocol, overrides app.shortener.protocol")
	fs.StringVar(&f.host, "host", "", "shortener host, overrides app.shortener.host")
	fs.StringVar(&f.apiKey, "api-key", "", "shortener API key, overrides app.shortener.api-key")
	fs.StringVar(&f.qrBaseURL, "qr-base-url", "", "QR code service, overrides app.qr-code.base-url")

	fs.StringVar(&f.qrCode.BackgroundColor, "bg", "", "QR code background color")
	fs.StringVar(&f.qrCode.ForegroundColor, "color", "", "QR code color")
	fs.StringVar(&f.qrCode.ErrorCorrection, "error-correction", "", "QR code error correction level: L, M, Q or H")
	fs.IntVar(&f.margin, "margin", -1, "QR code margin in pixels")
	fs.IntVar(&f.size, "size", 0, "QR code size in pixels")
	fs.StringVar(&f.qrCode.Logo, "logo", "", "QR code logo: default or disable")
	fs.StringVar(&f.qrCode.LogoUrl, "logo-url", "", "QR code logo image URL")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "margin":
			f.qrCode.Margin = &f.margin
		case "size":
			f.qrCode.Size = &f.size
		}
	})

	return f, nil
}

func (f *cliFlags) config() shorturl.Config {
	config := bootstrap.ShortUrlConfig()
	if f.protocol != "" {
		config.Shortener.Protocol = f.protocol
	}
	if f.host != "" {
		config.Shortener.Host = f.host
	}
	if f.apiKey != "" {
		config.Shortener.ApiKey = f.apiKey
	}
	if f.qrBaseURL != "" {
		config.QrCodeBaseURL = f.qrBaseURL
	}
	return config
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}
	if f.logLevel != "" {
		if err := log.SetLevel(f.logLevel); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}

	useCase := bootstrap.NewShortUrlUseCase(f.config())

	fmt.Fprintln(stderr, msg.GetMessage("short-url.create.start"))
	result, err := useCase.CreateShortUrl(ctx, model.CreateShortUrlDTO{LongUrl: f.longUrl, Slug: f.slug})
	switch {
	case errors.Is(err, shorturl.ErrMissingConfiguration):
		printFailure(stderr, "short-url.config.invalid", msg.GetMessage("short-url.config.invalid-detail"))
		return exitUsage
	case errors.Is(err, shorturl.ErrInvalidInput):
		printFailure(stderr, "short-url.input.invalid", msg.GetMessage("short-url.input.invalid-detail", err))
		return exitUsage
	case err != nil:
		printFailure(stderr, "short-url.create.failure", msg.GetMessage("short-url.create.failure-detail"))
		return exitFailure
	}

	fmt.Fprintln(stderr, msg.GetMessage("short-url.create.success"))
	if !f.generateQrCode {
		fmt.Fprintln(stdout, result.ShortUrl)
		return exitOK
	}

	// the short URL is printed whatever happens to the QR code
	details := model.ResultDetails{ShortUrl: result.ShortUrl}
	defer func() {
		if markdown := details.Markdown(); f.markdown && markdown != "" {
			fmt.Fprintln(stdout, markdown)
		} else {
			fmt.Fprintln(stdout, details.ShortUrl)
		}
	}()

	options := f.qrCode.Apply(useCase.DefaultQrCodeOptions())
	qrCodeUrl, err := useCase.BuildQrCodeUrl(result.ShortCode, options)
	if err != nil {
		printFailure(stderr, "short-url.qr-code.fetch-failure", err.Error())
		return exitOK
	}

	image, err := useCase.FetchQrImage(ctx, qrCodeUrl)
	if err != nil {
		printFailure(stderr, "short-url.qr-code.fetch-failure", err.Error())
		return exitOK
	}
	details.QrImage = image

	if f.saveImage {
		path, err := useCase.SaveQrImage(image)
		if err != nil {
			printFailure(stderr, "short-url.qr-code.copy-failure", err.Error())
			return exitOK
		}
		fmt.Fprintln(stderr, msg.GetMessage("short-url.qr-code.saved", path))
	}

	return exitOK
}

func printFailure(w io.Writer, titleKey, detail string) {
	fmt.Fprintf(w, "%s: %s\n", msg.GetMessage(titleKey), detail)
}
