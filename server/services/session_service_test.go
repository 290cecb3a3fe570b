package services

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/vantagelearn/lumen/lumen"
	"github.com/vantagelearn/lumen/server/config"
	"github.com/vantagelearn/lumen/server/models"
)

func sessionFixture(secret string) *SessionService {
	cfg := &lumen.Config{}
	cfg.Auth.SessionSecret = secret
	return NewSessionService(config.NewWebAppConfig(cfg, true))
}

func TestSessionService_SignRoundTrip(t *testing.T) {
	service := sessionFixture("test-secret")

	payload, err := json.Marshal(&models.UserSession{UserID: 7, Email: "ada@example.com", Username: "ada"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	signed, err := service.signData(payload)
	if err != nil {
		t.Fatalf("signData() error = %v", err)
	}

	decoded, err := service.verifyAndDecodeData(signed)
	if err != nil {
		t.Fatalf("verifyAndDecodeData() error = %v", err)
	}
	if string(decoded) != string(payload) {
		t.Errorf("decoded = %q, want %q", decoded, payload)
	}
}

func TestSessionService_RejectsTampering(t *testing.T) {
	service := sessionFixture("test-secret")

	signed, err := service.signData([]byte(`{"user_id":7,"is_admin":false}`))
	if err != nil {
		t.Fatalf("signData() error = %v", err)
	}

	raw, err := base64.URLEncoding.DecodeString(signed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	t.Run("flipped payload byte", func(t *testing.T) {
		tampered := append([]byte(nil), raw...)
		tampered[10] ^= 0xff
		if _, err := service.verifyAndDecodeData(base64.URLEncoding.EncodeToString(tampered)); err == nil {
			t.Error("tampered payload accepted")
		}
	})

	t.Run("flipped signature byte", func(t *testing.T) {
		tampered := append([]byte(nil), raw...)
		tampered[len(tampered)-1] ^= 0xff
		if _, err := service.verifyAndDecodeData(base64.URLEncoding.EncodeToString(tampered)); err == nil {
			t.Error("tampered signature accepted")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := sessionFixture("different-secret")
		if _, err := other.verifyAndDecodeData(signed); err == nil {
			t.Error("cookie signed under another secret accepted")
		}
	})

	t.Run("too short", func(t *testing.T) {
		short := base64.URLEncoding.EncodeToString([]byte("tiny"))
		if _, err := service.verifyAndDecodeData(short); err == nil {
			t.Error("undersized cookie accepted")
		}
	})
}

func TestSessionService_RequiresSecret(t *testing.T) {
	service := sessionFixture("")

	if _, err := service.signData([]byte("data")); err == nil {
		t.Error("signData() succeeded without a secret")
	}
	if _, err := service.verifyAndDecodeData("anything"); err == nil {
		t.Error("verifyAndDecodeData() succeeded without a secret")
	}
}
