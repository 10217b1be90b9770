package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/omeyang/xipcheck/pkg/observability/xmetrics"
	"github.com/omeyang/xipcheck/pkg/util/xipcheck"
)

// runCLI 以给定 stdin 执行命令，返回退出码与输出。
func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), append([]string{"xipctl"}, args...), strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestValidateCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "validate", "10.0.0.1", "2001::", "016.17.184.1")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	want := "10.0.0.1\tIPv4\n2001::\tIPv6\n016.17.184.1\tinvalid\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	code, out, _ = runCLI(t, "", "validate", "--ipv6", "::ffff:12.34.56.78")
	if code != 0 || out != "::ffff:12.34.56.78\tIPv6\n" {
		t.Errorf("validate --ipv6 = %d %q", code, out)
	}

	code, _, _ = runCLI(t, "", "validate", "--ipv4", "::1")
	if code != 1 {
		t.Errorf("validate --ipv4 ::1 exit code = %d, want 1", code)
	}

	code, _, stderr := runCLI(t, "", "validate", "--ipv4", "--ipv6", "1.2.3.4")
	if code != 2 || !strings.Contains(stderr, "参数错误") {
		t.Errorf("conflicting flags = %d %q", code, stderr)
	}

	if code, _, _ := runCLI(t, "", "validate"); code != 2 {
		t.Errorf("validate without args exit code = %d, want 2", code)
	}
}

func TestClassifyCommand(t *testing.T) {
	code, out, _ := runCLI(t, "", "classify", "2001::1234", "8.8.8.8", "2001:::")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	want := "2001::1234\tipv6\tspecial,teredo\n8.8.8.8\tipv4\tpublic\n2001:::\tinvalid\t-\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	code, out, _ = runCLI(t, "", "classify", "--json", "127.0.0.1")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, part := range []string{`"literal":"127.0.0.1"`, `"categories":["loopback"]`, `"family":"ipv4"`} {
		if !strings.Contains(out, part) {
			t.Errorf("json output %q missing %s", out, part)
		}
	}
}

func TestInNetCommand(t *testing.T) {
	code, out, stderr := runCLI(t, "", "innet", "216.240.32.5", "216.240.32.0/24")
	if code != 0 || out != "216.240.32.5\n" {
		t.Errorf("cidr = %d %q", code, out)
	}
	if strings.Contains(stderr, "deprecated") {
		t.Errorf("cidr form should not warn: %q", stderr)
	}

	code, out, stderr = runCLI(t, "", "innet", "216.240.32.5", "216.240.32")
	if code != 0 || out != "216.240.32.5\n" {
		t.Errorf("legacy = %d %q", code, out)
	}
	if strings.Count(stderr, "deprecated network notation") != 1 {
		t.Errorf("legacy form should warn once: %q", stderr)
	}

	if code, _, _ = runCLI(t, "", "innet", "10.0.0.1", "192.168.0.0/16"); code != 1 {
		t.Errorf("not in network exit code = %d, want 1", code)
	}
	if code, _, _ = runCLI(t, "", "innet", "--ipv6", "fe80::1", "fe80::/10"); code != 0 {
		t.Errorf("ipv6 exit code = %d, want 0", code)
	}
	if code, _, _ = runCLI(t, "", "innet", "10.0.0.1", "bogus"); code != 2 {
		t.Errorf("invalid network exit code = %d, want 2", code)
	}
	if code, _, _ = runCLI(t, "", "innet", "10.0.0.1", "2001:db8::/32"); code != 2 {
		t.Errorf("family mismatch exit code = %d, want 2", code)
	}
	if code, _, _ = runCLI(t, "", "innet", "10.0.0.1"); code != 2 {
		t.Errorf("missing network exit code = %d, want 2", code)
	}
}

func TestBatchCommandKeepsOrder(t *testing.T) {
	var in, want strings.Builder
	for i := 0; i < 300; i++ {
		addr := "10.0." + strconv.Itoa(i/256) + "." + strconv.Itoa(i%256)
		in.WriteString(addr + "\n\n")
		want.WriteString(addr + "\tipv4\tprivate\n")
	}

	code, out, _ := runCLI(t, in.String(), "batch", "-n", "4")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if out != want.String() {
		t.Errorf("batch output out of order or wrong")
	}

	if code, _, _ := runCLI(t, "", "batch", "-n", "0"); code != 2 {
		t.Errorf("zero concurrency exit code = %d, want 2", code)
	}
}

func TestBatchCommandInputFile(t *testing.T) {
	path := writeConfig(t, "addrs.txt", "::1\n 8.8.8.8 \n")
	code, out, _ := runCLI(t, "", "batch", "--input", path, "--json")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `"input":"::1"`) || !strings.Contains(lines[1], `"public":true`) {
		t.Errorf("unexpected output %q", out)
	}

	if code, _, _ := runCLI(t, "", "batch", "--input", filepath.Join(t.TempDir(), "missing")); code != 1 {
		t.Errorf("missing input exit code = %d, want 1", code)
	}
}

func TestClassifyBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := classifyBatch(ctx, xipcheck.MustNew(), xmetrics.NoopObserver{}, []string{"1.1.1.1", "2.2.2.2"}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	reports, err := classifyBatch(context.Background(), xipcheck.MustNew(), nil, nil, 1)
	if err != nil || len(reports) != 0 {
		t.Errorf("empty batch = %v, %v", reports, err)
	}
}

func TestFilterCommand(t *testing.T) {
	in := "10.0.0.1\n8.8.8.8\nnot-an-ip\n fd00::1 \n2606:4700::1111\n"

	code, out, _ := runCLI(t, in, "filter", "--category", "private")
	if code != 0 || out != "10.0.0.1\n fd00::1 \n" {
		t.Errorf("private = %d %q", code, out)
	}

	code, out, _ = runCLI(t, in, "filter", "--category", "public")
	if code != 0 || out != "8.8.8.8\n2606:4700::1111\n" {
		t.Errorf("public = %d %q", code, out)
	}

	code, out, _ = runCLI(t, in, "filter", "--category", "public", "--invert")
	if code != 0 || out != "10.0.0.1\nnot-an-ip\n fd00::1 \n" {
		t.Errorf("invert = %d %q", code, out)
	}

	if code, _, _ := runCLI(t, in, "filter", "--category", "office"); code != 2 {
		t.Errorf("unknown category exit code = %d, want 2", code)
	}
	if code, _, _ := runCLI(t, in, "filter", "--category", "private", "--watch"); code != 2 {
		t.Errorf("watch without config exit code = %d, want 2", code)
	}
}

func TestConfigCustomCategories(t *testing.T) {
	path := writeConfig(t, "xipctl.yaml", `
fast_parse: false
concurrency: 2
log:
  level: error
cache:
  size: 16
  ttl: 1m
categories:
  ipv4:
    office: ["203.0.114.0/24"]
  ipv6:
    lab: ["2001:db8:1::/48"]
`)
	code, out, _ := runCLI(t, "", "-c", path, "classify", "203.0.114.9", "2001:db8:1::5")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := "203.0.114.9\tipv4\toffice\n2001:db8:1::5\tipv6\tdocumentation,lab\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	code, out, _ = runCLI(t, "203.0.114.1\n1.1.1.1\n", "-c", path, "filter", "--category", "office")
	if code != 0 || out != "203.0.114.1\n" {
		t.Errorf("filter office = %d %q", code, out)
	}

	// 输入结束后 watcher 随之停止
	code, out, _ = runCLI(t, "1.1.1.1\n203.0.114.1\n", "-c", path, "filter", "--category", "office", "--invert", "--watch")
	if code != 0 || out != "1.1.1.1\n" {
		t.Errorf("filter --watch = %d %q", code, out)
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad extension", "xipctl.toml", "x = 1"},
		{"bad concurrency", "xipctl.yaml", "concurrency: -1"},
		{"bad category", "xipctl.yaml", "categories:\n  ipv4:\n    office: [not-a-cidr]"},
		{"reserved name", "xipctl.json", `{"categories":{"ipv4":{"public":["1.0.0.0/8"]}}}`},
		{"bad cache", "xipctl.yaml", "cache:\n  size: 1\n  ttl: -1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			if code, _, _ := runCLI(t, "", "-c", path, "validate", "1.2.3.4"); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
		})
	}

	if code, _, _ := runCLI(t, "", "--log-format", "xml", "validate", "1.2.3.4"); code != 2 {
		t.Errorf("bad log format exit code = %d, want 2", code)
	}
}

func TestStatsFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--stats", "validate", "--ipv4", "1.2.3.4", "5.6.7.8", "bogus")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	for _, want := range []string{"operation\tfamily\tmatched\tcount", "is_ipv4\tipv4\ttrue\t2", "is_ipv4\tipv4\tfalse\t1"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stats output %q missing %q", stderr, want)
		}
	}
}

func TestSessionReload(t *testing.T) {
	path := writeConfig(t, "xipctl.yaml", "categories:\n  ipv4:\n    office: [203.0.114.0/24]\n")
	code, _, _ := runCLI(t, "", "-c", path, "validate", "1.2.3.4")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	s := newSession(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	settings, cfg, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	s.settings, s.cfg = settings, cfg
	if err := s.setupLogger(); err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	c, err := s.newChecker(settings)
	if err != nil {
		t.Fatalf("newChecker: %v", err)
	}
	s.checker.Store(c)
	if _, ok := s.current().IsCategory("office", "203.0.114.9"); !ok {
		t.Fatal("office category missing before reload")
	}

	if err := os.WriteFile(path, []byte("categories:\n  ipv4:\n    lab: [198.18.0.0/24]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if err := s.reload(context.Background(), cfg); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := s.current().IsCategory("office", "203.0.114.9"); ok {
		t.Error("office category should be gone after reload")
	}
	if _, ok := s.current().IsCategory("lab", "198.18.0.1"); !ok {
		t.Error("lab category missing after reload")
	}

	// 非法配置保留旧 Checker
	before := s.current()
	if err := os.WriteFile(path, []byte("concurrency: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if err := s.reload(context.Background(), cfg); err == nil {
		t.Error("expected reload error")
	}
	if s.current() != before {
		t.Error("checker replaced by rejected config")
	}
	if err := s.teardown(context.Background(), nil); err != nil {
		t.Errorf("teardown: %v", err)
	}
}

func TestExitError(t *testing.T) {
	err := &exitError{code: 2}
	if err.Error() != "exit status 2" {
		t.Errorf("exitError.Error() = %q", err.Error())
	}
	var target *exitError
	if !errors.As(err, &target) || target.code != 2 {
		t.Error("errors.As failed for *exitError")
	}
}

func TestIsCLIUsageError(t *testing.T) {
	if !isCLIUsageError(errors.New("flag provided but not defined: -x")) {
		t.Error("unknown flag should be a usage error")
	}
	if isCLIUsageError(errors.New("disk full")) {
		t.Error("disk full is not a usage error")
	}
	if code, _, _ := runCLI(t, "", "validate", "--nope", "1.2.3.4"); code != 2 {
		t.Errorf("unknown flag exit code = %d, want 2", code)
	}
	if code, _, _ := runCLI(t, "", "filter"); code != 2 {
		t.Errorf("missing required flag exit code = %d, want 2", code)
	}
}
