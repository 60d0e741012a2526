package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/flowmind/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// ErrTrayNotRunning is returned when no tray companion is listening.
var ErrTrayNotRunning = errors.New("flowmind-tray is not running")

// Notifier forwards messages to the desktop tray companion over its local
// webhook.
type Notifier struct {
	client *http.Client
}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

type endpoint struct {
	port   string
	secret string
}

func New() *Notifier {
	return &Notifier{
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

func (n *Notifier) Notify(ctx context.Context, text string) error {
	ep, err := trayEndpoint()
	if err != nil {
		return err
	}

	return n.send(ctx, ep, WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// Available reports whether a tray companion is running and accepting
// notifications, without sending one.
func Available() error {
	_, err := trayEndpoint()
	return err
}

func trayEndpoint() (endpoint, error) {
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		return endpoint{}, err
	}
	return findAndValidateTrayProcess(filepath.Join(dir, constants.NotifierLockfileName))
}

// GetTrayAppConfigDir returns the directory holding the tray lockfile. The
// tray may point it elsewhere through lockfile_dir in its settings.json.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayConfigDir, "settings.json"))
	if err != nil {
		return trayConfigDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err == nil {
		if dir := store.Settings.LockfileDir; dir != nil && *dir != "" {
			return *dir, nil
		}
	}
	return trayConfigDir, nil
}

// findAndValidateTrayProcess parses a "port|pid|secret" lockfile and checks
// that pid belongs to a live tray process.
func findAndValidateTrayProcess(lockfilePath string) (endpoint, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return endpoint{}, ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return endpoint{}, errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	if port == "" {
		return endpoint{}, errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return endpoint{}, errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return endpoint{}, fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return endpoint{}, errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return endpoint{}, errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return endpoint{}, ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return endpoint{}, fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, process.Executable())
	}

	return endpoint{port: port, secret: secret}, nil
}

func (n *Notifier) send(ctx context.Context, ep endpoint, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://127.0.0.1:%s", ep.port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.NotifySecretHeader, ep.secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}
