package config

import (
	"os"
	"path/filepath"
	"testing"
)

const minimalManifest = `version: "1"
service:
  name: sphero
`

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() returned error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%s) returned error: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func writeManifest(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) returned error: %v", path, err)
	}
}

func TestResolveDefaultsWhenNoManifest(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, source, err := NewResolver("").Resolve()
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if source != "" {
		t.Errorf("source = %s, expected empty for defaults", source)
	}
	if cfg.Service.Name != DefaultServiceName {
		t.Errorf("Service.Name = %s", cfg.Service.Name)
	}
}

func TestResolveLocalFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeManifest(t, filepath.Join(dir, "sphero.yaml"), minimalManifest)

	_, source, err := NewResolver("").Resolve()
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if filepath.Base(source) != "sphero.yaml" {
		t.Errorf("source = %s, expected local sphero.yaml", source)
	}
}

func TestResolveCLIFlagWinsOverLocalFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeManifest(t, filepath.Join(dir, "sphero.yaml"), minimalManifest)

	other := filepath.Join(t.TempDir(), "custom.yaml")
	writeManifest(t, other, `version: "1"
service:
  name: rover
`)

	cfg, source, err := NewResolver(other).Resolve()
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if source != other {
		t.Errorf("source = %s, expected %s", source, other)
	}
	if cfg.Service.Name != "rover" {
		t.Errorf("Service.Name = %s, expected rover from CLI config", cfg.Service.Name)
	}
}

func TestResolveCLIFlagMissingFileFails(t *testing.T) {
	chdir(t, t.TempDir())

	_, _, err := NewResolver("/nonexistent/sphero.yaml").Resolve()
	if err == nil {
		t.Fatal("Resolve() with missing --config file should return error")
	}
}

func TestResolveEnvVariable(t *testing.T) {
	chdir(t, t.TempDir())

	envManifest := filepath.Join(t.TempDir(), "env.yaml")
	writeManifest(t, envManifest, `version: "1"
service:
  name: fromenv
`)
	t.Setenv(EnvConfigFile, envManifest)

	cfg, source, err := NewResolver("").Resolve()
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if source != envManifest {
		t.Errorf("source = %s, expected %s", source, envManifest)
	}
	if cfg.Service.Name != "fromenv" {
		t.Errorf("Service.Name = %s, expected fromenv", cfg.Service.Name)
	}
}

func TestResolveEnvMissingFileFails(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvConfigFile, "/nonexistent/env.yaml")

	_, _, err := NewResolver("").Resolve()
	if err == nil {
		t.Fatal("Resolve() with missing env config should return error")
	}
}

func TestLoadParsesManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphero.yaml")
	writeManifest(t, path, `version: "1"
service:
  name: sphero
  install_dir: /srv/sphero
artifacts:
  source: s3://fleet-artifacts/sphero
  files:
    - main.py
packages:
  apt:
    - python3
interfaces:
  i2c: false
reboot:
  delay_seconds: 10
aws:
  region: us-east-1
  endpoint: http://localhost:4566
report:
  sns_topic_arn: arn:aws:sns:us-east-1:000000000000:provision
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.InstallDir() != "/srv/sphero" {
		t.Errorf("InstallDir() = %s", cfg.InstallDir())
	}
	if cfg.Artifacts.Source != "s3://fleet-artifacts/sphero" {
		t.Errorf("Artifacts.Source = %s", cfg.Artifacts.Source)
	}
	if *cfg.Interfaces.I2C {
		t.Error("interfaces.i2c should be false")
	}
	if !*cfg.Interfaces.RemoteGPIO {
		t.Error("interfaces.remote_gpio should default to true")
	}
	if cfg.Reboot.DelaySeconds != 10 {
		t.Errorf("Reboot.DelaySeconds = %d", cfg.Reboot.DelaySeconds)
	}
	if cfg.Report == nil || cfg.Report.SNSTopicARN == "" {
		t.Error("report config was not parsed")
	}
	if cfg.AWS == nil || cfg.AWS.Region != "us-east-1" || cfg.AWS.Endpoint != "http://localhost:4566" {
		t.Errorf("aws config was not parsed: %+v", cfg.AWS)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphero.yaml")
	writeManifest(t, path, "service: [unclosed")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with malformed yaml should return error")
	}
}
