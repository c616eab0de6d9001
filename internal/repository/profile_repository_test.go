package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"company-ai/internal/repository"

	"github.com/m-mizutani/gt"
	"go.uber.org/zap"
)

const sampleProfile = `
[company]
name = "Acme Widgets"
industry = "Manufacturing"
founded = "1999"
mission = "Widgets for everyone"
products = ["Widget One - the first widget", "Widget Two - the second widget"]
services = ["Repair - we fix widgets"]
values = ["Precision"]

[company.contact]
email = "hi@acme.test"
phone = "+1-555-0000"
website = "https://acme.test"

[[custom_qa]]
question = "do you ship abroad"
answer = "Yes, worldwide."

[[custom_qa]]
question = "are widgets safe"
answer = "Very safe."
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "company.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadProfile(t *testing.T) {
	repo := repository.NewProfileRepository(writeFile(t, sampleProfile), zap.NewNop())

	cfg, found := repo.LoadProfile(context.Background())
	gt.Bool(t, found).True()
	gt.Value(t, cfg.Company.Name).Equal("Acme Widgets")
	gt.Value(t, cfg.Company.Contact.Website).Equal("https://acme.test")
	gt.A(t, cfg.Company.Products).Length(2)
	gt.Value(t, cfg.Company.Team).Nil()
	gt.A(t, cfg.CustomQA).Length(2)
	gt.Value(t, cfg.CustomQA[0].Question).Equal("do you ship abroad")
	gt.Value(t, cfg.CustomQA[1].Answer).Equal("Very safe.")
}

func TestLoadProfileFallback(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "empty path",
			path: func(t *testing.T) string { return "" },
		},
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
		},
		{
			name: "malformed toml",
			path: func(t *testing.T) string { return writeFile(t, "[company\nname = ") },
		},
		{
			name: "unknown key",
			path: func(t *testing.T) string { return writeFile(t, "[company]\nname = \"X\"\nslogan = \"y\"\n") },
		},
		{
			name: "missing name",
			path: func(t *testing.T) string { return writeFile(t, "[company]\nindustry = \"X\"\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewProfileRepository(tt.path(t), zap.NewNop())
			cfg, found := repo.LoadProfile(context.Background())
			gt.Bool(t, found).False()
			gt.Value(t, cfg.Company.Name).Equal("")
		})
	}
}

func TestShippedProfileParses(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "company.toml"))
	gt.NoError(t, err).Required()

	cfg, err := repository.ParseProfile(data)
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.Company.Name).Equal("TechCorp Solutions")
	gt.A(t, cfg.Company.Values).Length(4)
	gt.Value(t, cfg.Company.Team).NotNil()
	gt.A(t, cfg.Company.Team.Locations).Length(3)
	gt.A(t, cfg.CustomQA).Length(4)
	gt.Value(t, cfg.CustomQA[1].Question).Equal("do you offer support")
}
