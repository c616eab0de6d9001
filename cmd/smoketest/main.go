package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"company-ai/internal/dto"
	"company-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/urfave/cli/v3"
)

var defaultQuestions = []string{
	"Hello, how are you?",
	"What does your company do?",
	"What are your products?",
	"How can I contact you?",
	"What makes you different from competitors?",
	"Do you offer support?",
}

var errUnreachable = errors.New("could not connect to AI server")

func main() {
	var url string
	var timeout time.Duration

	cmd := &cli.Command{
		Name:  "smoketest",
		Usage: "Send sample questions to a running company-ai server and print the answers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "url",
				Usage:       "Chat completions endpoint",
				Value:       "http://localhost:8001/v1/chat/completions",
				Sources:     cli.EnvVars("COMPANY_AI_URL"),
				Destination: &url,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "Per-request timeout",
				Value:       10 * time.Second,
				Destination: &timeout,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			questions := defaultQuestions
			if c.Args().Len() > 0 {
				questions = c.Args().Slice()
			}
			return run(url, timeout, questions, os.Stdout)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(url string, timeout time.Duration, questions []string, out io.Writer) error {
	fmt.Fprintln(out, "Testing Local AI Server...")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	for _, question := range questions {
		answer, err := ask(url, timeout, question)
		if err != nil {
			if errors.Is(err, errUnreachable) {
				fmt.Fprintln(out, "Error: Could not connect to AI server.")
				fmt.Fprintf(out, "Make sure the server is running at %s\n", url)
				fmt.Fprintln(out, "Run: go run ./cmd/company-ai")
			}
			return err
		}

		fmt.Fprintf(out, "Q: %s\n", question)
		fmt.Fprintf(out, "A: %s\n", answer)
		fmt.Fprintln(out, strings.Repeat("-", 50))
	}
	return nil
}

func ask(url string, timeout time.Duration, question string) (string, error) {
	temperature := 0.7
	payload, err := json.Marshal(dto.ChatCompletionRequest{
		Model:       service.ModelName,
		Messages:    []dto.ChatMessage{{Role: "user", Content: dto.MessageContent(question)}},
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	agent := fiber.Post(url).
		ContentType(fiber.MIMEApplicationJSON).
		Body(payload).
		Timeout(timeout)
	if err := agent.Parse(); err != nil {
		return "", fmt.Errorf("invalid url %q: %w", url, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %v", errUnreachable, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("server returned %d: %s", code, strings.TrimSpace(string(body)))
	}

	var resp dto.ChatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
