package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ohler55/ojg/oj"

	"finload/app/fileloader"
	"finload/app/settings"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "absent.yml"), args...)
}

func executeWithConfig(t *testing.T, config string, args ...string) (string, string, error) {
	t.Helper()
	loadFlags = struct {
		fileType string
		sep      string
		encoding string
		format   string
		out      string
		noHeader bool
	}{}
	summaryFlags = struct {
		sep      string
		encoding string
	}{}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", config, "--log-level", "error"}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	return path
}

func TestLoadCommand_CSV(t *testing.T) {
	path := writeInput(t, "fec.txt", "CompteNum|Credit|Debit\n001|100,00|0,00\n002|0,00|50,50\n")

	out, _, err := execute(t, "load", path, "-f", "csv")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := "CompteNum,Credit,Debit,Solde\n001,100,0,100\n002,0,50.5,-50.5\n"
	if out != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, out)
	}
}

func TestLoadCommand_BalanceSheetNotice(t *testing.T) {
	path := writeInput(t, "bilan.txt", "Poste;Montant\nCapital;1000\n")

	out, errOut, err := execute(t, "load", path, "--type", "balance_sheet", "--sep", ";")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !strings.Contains(out, "Capital") {
		t.Errorf("Expected table output, got %q", out)
	}
	if !strings.Contains(errOut, "Balance Sheet harmonization not fully implemented") {
		t.Errorf("Expected the notice on stderr, got %q", errOut)
	}
}

func TestLoadCommand_Errors(t *testing.T) {
	path := writeInput(t, "fec.txt", "CompteNum|Credit|Debit\n001|1|0\n")

	if _, _, err := execute(t, "load", path, "--type", "ledger"); err == nil || !strings.Contains(err.Error(), "balance_sheet") {
		t.Errorf("Expected a configuration error listing the supported types, got %v", err)
	}
	if _, _, err := execute(t, "load", path, "--sep", "||"); err == nil {
		t.Error("Expected an error for a multi-character separator")
	}
	if _, _, err := execute(t, "load", path, "--format", "pdf"); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}

func TestSummaryCommand(t *testing.T) {
	path := writeInput(t, "fec.txt", "CompteNum|Credit|Debit\n512|0|100\n411|100|0\n512|20,5|0\n")

	out, _, err := execute(t, "summary", path)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header, 2 accounts and a total, got:\n%s", out)
	}
	if !strings.Contains(lines[1], "411") || !strings.Contains(lines[2], "-79.50") {
		t.Errorf("Unexpected balances:\n%s", out)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[3]), "Total") || !strings.Contains(lines[3], "20.50") {
		t.Errorf("Unexpected total line %q", lines[3])
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("Expected %q, got %q", version, out)
	}
}

func TestLoadCommand_OutFile(t *testing.T) {
	path := writeInput(t, "fec.txt", "CompteNum|Credit|Debit\n001|10|2,5\n")
	out := filepath.Join(t.TempDir(), "ledger.json")

	stdout, _, err := execute(t, "load", path, "--format", "json", "--out", out)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %q", stdout)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	parsed, err := oj.ParseString(string(b))
	if err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	rows := parsed.(map[string]any)["rows"].([]any)
	if len(rows) != 1 || rows[0].([]any)[3] != 7.5 {
		t.Errorf("Unexpected rows %v", rows)
	}
}

func TestLoadCommand_OutFileInMissingDirectory(t *testing.T) {
	path := writeInput(t, "fec.txt", "CompteNum|Credit|Debit\n001|10|2,5\n")
	out := filepath.Join(t.TempDir(), "missing", "ledger.csv")

	if _, _, err := execute(t, "load", path, "--format", "csv", "--out", out); err == nil {
		t.Error("Expected an error when the output file cannot be created")
	}
}

func TestLoadCommand_NoHeader(t *testing.T) {
	path := writeInput(t, "bilan.txt", "Capital|1000\nStocks|250\n")

	out, _, err := execute(t, "load", path, "--type", "balance_sheet", "--no-header", "--format", "csv")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := "Unnamed_A,Unnamed_B\nCapital,1000\nStocks,250\n"
	if out != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, out)
	}
}

func TestHashCommand(t *testing.T) {
	content := "CompteNum|Credit|Debit\n001|1|0\n"
	path := writeInput(t, "fec.txt", content)

	out, _, err := execute(t, "hash", path)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	want, err := fileloader.HashBytes([]byte(content))
	if err != nil {
		t.Fatalf("HashBytes failed: %v", err)
	}
	if out != want+"  "+path+"\n" {
		t.Errorf("Expected %q, got %q", want+"  "+path+"\n", out)
	}

	if _, _, err := execute(t, "hash", filepath.Join(t.TempDir(), "absent.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	config := filepath.Join(t.TempDir(), settings.FileName)

	if _, _, err := executeWithConfig(t, config, "config", "set", "encoding", "cp1252"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, _, err := executeWithConfig(t, config, "config", "set", "separator", ";"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	s, err := settings.LoadFile(config)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Encoding != "cp1252" || s.Separator != ";" {
		t.Errorf("Settings not saved: %+v", s)
	}

	out, _, err := executeWithConfig(t, config, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "encoding: cp1252") || !strings.HasPrefix(out, "# "+config) {
		t.Errorf("Unexpected config show output:\n%s", out)
	}

	// The stored separator applies to later loads
	path := writeInput(t, "fec.txt", "CompteNum;Credit;Debit\n001;1;0\n")
	if _, _, err := executeWithConfig(t, config, "load", path, "--format", "csv"); err != nil {
		t.Errorf("load with stored settings failed: %v", err)
	}

	if _, _, err := executeWithConfig(t, config, "config", "set", "colour", "blue"); !errors.Is(err, settings.ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
	if _, _, err := executeWithConfig(t, config, "config", "set", "file_type", "ledger"); err == nil {
		t.Error("Expected an error for an invalid file type")
	}
}
