package systemd

import (
	"strings"
	"testing"
)

func TestRenderUnitReplacesEveryToken(t *testing.T) {
	template := `[Unit]
Description=sphero controller

[Service]
WorkingDirectory=INSTALL_DIR
ExecStart=/usr/bin/python3 INSTALL_DIR/main.py

[Install]
WantedBy=multi-user.target
`

	rendered := string(RenderUnit([]byte(template), "/opt/sphero"))

	if strings.Contains(rendered, InstallDirToken) {
		t.Errorf("rendered unit still contains the placeholder:\n%s", rendered)
	}
	if !strings.Contains(rendered, "WorkingDirectory=/opt/sphero") {
		t.Errorf("WorkingDirectory not substituted:\n%s", rendered)
	}
	if !strings.Contains(rendered, "ExecStart=/usr/bin/python3 /opt/sphero/main.py") {
		t.Errorf("ExecStart not substituted:\n%s", rendered)
	}
}

func TestRenderUnitWithoutToken(t *testing.T) {
	template := "[Unit]\nDescription=static\n"

	rendered := string(RenderUnit([]byte(template), "/opt/sphero"))
	if rendered != template {
		t.Errorf("template without placeholder was modified:\n%s", rendered)
	}
}
