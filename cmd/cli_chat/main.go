package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"behavior-analytics/internal/app"
	"behavior-analytics/internal/config"
	"behavior-analytics/internal/render"
	"behavior-analytics/internal/service"
)

func main() {
	userID := flag.String("user", "cli", "id del usuario observado")
	name := flag.String("name", "CLI", "nombre visible del usuario")
	flag.Parse()

	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	svcs, cleanup, err := app.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := runChat(ctx, os.Stdin, os.Stdout, svcs, *userID, *name); err != nil {
		log.Fatal(err)
	}
}

// runChat lee mensajes linea a linea. Las lineas con comando imprimen el
// reporte; el resto se ingiere y solo imprime el feedback periodico.
func runChat(ctx context.Context, in io.Reader, out io.Writer, svcs *app.Services, userID, name string) error {
	if _, err := svcs.Users.Register(ctx, service.RegisterUserInput{UserID: userID, DisplayName: name}); err != nil {
		return fmt.Errorf("registrar usuario: %w", err)
	}
	fmt.Fprintln(out, render.Welcome(name))
	fmt.Fprintln(out, "---- Modo Chat (escribe 'salir' para terminar) ----")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Tu > ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("leer input: %w", err)
		}
		text := strings.TrimSpace(line)
		switch {
		case text == "":
		case strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit"):
			fmt.Fprintln(out, "Saliendo del chat...")
			return nil
		case strings.HasPrefix(text, "/"):
			fmt.Fprintln(out, command(ctx, svcs, userID, text))
		default:
			res, ingestErr := svcs.Ingest.Ingest(ctx, service.IngestInput{UserID: userID, DisplayName: name, Text: text})
			if ingestErr != nil {
				fmt.Fprintf(out, "error guardando mensaje: %v\n", ingestErr)
			} else if res.Feedback != nil {
				fmt.Fprintln(out, render.Feedback(*res.Feedback))
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func command(ctx context.Context, svcs *app.Services, userID, text string) string {
	cmd := strings.Fields(text)[0]
	var (
		out string
		err error
	)
	switch cmd {
	case "/help", "/start":
		return render.Help()
	case "/mood":
		r, e := svcs.Reports.Mood(ctx, userID)
		out, err = render.Mood(r), e
	case "/personality":
		r, e := svcs.Reports.Personality(ctx, userID)
		out, err = render.Personality(r), e
	case "/report":
		r, e := svcs.Reports.Comprehensive(ctx, userID)
		out, err = render.Comprehensive(r), e
	case "/stats":
		r, e := svcs.Reports.Stats(ctx, userID)
		out, err = render.Stats(r), e
	default:
		return "Comando desconocido. Usa /help."
	}
	if err != nil {
		if msg, ok := render.InsufficientData(err); ok {
			return msg
		}
		return fmt.Sprintf("error generando reporte: %v", err)
	}
	return out
}
