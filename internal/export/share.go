package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/modu-ai/uiprompt/pkg/models"
)

// ShareParam is the query parameter carrying the encoded payload.
const ShareParam = "config"

// SharePayload is the state carried by a share link.
type SharePayload struct {
	UIType models.UIType        `json:"uiType"`
	Config models.Configuration `json:"config"`
}

// ShareLink returns base with the "config" query parameter set to the
// base64-encoded JSON of uiType and cfg. Other query parameters are kept.
func ShareLink(base string, uiType models.UIType, cfg models.Configuration) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if cfg == nil {
		cfg = models.Configuration{}
	}

	data, err := json.Marshal(SharePayload{UIType: uiType, Config: cfg})
	if err != nil {
		return "", fmt.Errorf("marshal share payload: %w", err)
	}

	q := u.Query()
	q.Set(ShareParam, base64.StdEncoding.EncodeToString(data))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseShareLink decodes a link produced by ShareLink. Any failure,
// including a missing uiType or config, yields false.
func ParseShareLink(raw string) (SharePayload, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return SharePayload{}, false
	}
	encoded := u.Query().Get(ShareParam)
	if encoded == "" {
		return SharePayload{}, false
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return SharePayload{}, false
	}

	var p SharePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return SharePayload{}, false
	}
	if p.UIType == "" || p.Config == nil {
		return SharePayload{}, false
	}

	p.Config = p.Config.Clone()
	return p, true
}
