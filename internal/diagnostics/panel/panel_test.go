package panel

import (
	"encoding/json"
	"strings"
	"testing"

	"csob_gateway/internal/diagnostics"
	"csob_gateway/internal/domain/entities"
)

func testConfig(t *testing.T) entities.MerchantConfig {
	t.Helper()
	cfg, err := entities.NewMerchantConfig(entities.MerchantConfigParams{
		MerchantID:        "M123",
		PrivateKeyPath:    "/keys/priv.key",
		BankPublicKeyPath: "/keys/bank.pub",
		ShopName:          "My Shop",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cfg
}

func jsonPayload(t *testing.T, raw string) diagnostics.Payload {
	t.Helper()
	return diagnostics.PayloadFromJSON(json.RawMessage(raw))
}

func TestPanel_RenderSummary(t *testing.T) {
	t.Run("single ok call", func(t *testing.T) {
		rec := diagnostics.NewRecorder()
		rec.RecordCall(1, jsonPayload(t, `{"amount":100}`), jsonPayload(t, `{"status":"ok"}`))

		out := New(rec).RenderSummary()
		if !strings.Contains(out, "1 request") {
			t.Fatalf("expected singular request count, got %q", out)
		}
		if strings.Contains(out, "error") {
			t.Fatalf("expected no error marker, got %q", out)
		}
		if !strings.Contains(out, TabIcon) {
			t.Fatalf("expected the tab icon in %q", out)
		}
	})

	t.Run("mixed calls", func(t *testing.T) {
		rec := diagnostics.NewRecorder()
		rec.RecordCall(1, jsonPayload(t, `{"amount":100}`), jsonPayload(t, `{"status":"ok"}`))
		rec.RecordCall(2, jsonPayload(t, `{"amount":200}`), jsonPayload(t, `false`))

		out := New(rec).RenderSummary()
		if !strings.Contains(out, "2 req") {
			t.Fatalf("expected request count, got %q", out)
		}
		if !strings.Contains(out, "1 error") {
			t.Fatalf("expected singular error count, got %q", out)
		}
	})

	t.Run("plural forms", func(t *testing.T) {
		rec := diagnostics.NewRecorder()
		rec.RecordCall(1, nil, nil)
		rec.RecordCall(2, nil, nil)

		out := New(rec).RenderSummary()
		if !strings.Contains(out, "2 requests") || !strings.Contains(out, "2 errors") {
			t.Fatalf("expected plural wording, got %q", out)
		}
	})

	t.Run("empty recorder", func(t *testing.T) {
		out := New(diagnostics.NewRecorder()).RenderSummary()
		if !strings.Contains(out, "0 requests") {
			t.Fatalf("expected plural zero wording, got %q", out)
		}
	})
}

func TestPanel_RenderDetail_ConfigSnapshot(t *testing.T) {
	rec := diagnostics.NewRecorder()
	rec.SetActiveConfig(testConfig(t))

	out := New(rec).RenderDetail()
	if !strings.Contains(out, "M123") || !strings.Contains(out, "My Shop") {
		t.Fatalf("expected config snapshot in %q", out)
	}
	if !strings.Contains(out, entities.SandboxAPIURL) {
		t.Fatalf("expected sandbox endpoint in snapshot: %q", out)
	}
	if strings.Contains(out, "gw-warning") {
		t.Fatalf("did not expect warning with a registered config: %q", out)
	}
}

func TestPanel_RenderDetail_MissingConfigWarning(t *testing.T) {
	out := New(diagnostics.NewRecorder()).RenderDetail()
	if !strings.Contains(out, "gw-warning") {
		t.Fatalf("expected warning marker, got %q", out)
	}
	if !strings.Contains(out, "no gateway configuration could be loaded") {
		t.Fatalf("expected warning text, got %q", out)
	}
	if strings.Contains(out, "merchantId") {
		t.Fatalf("expected no configuration snapshot, got %q", out)
	}
}

func TestPanel_RenderDetail_Entries(t *testing.T) {
	rec := diagnostics.NewRecorder()
	rec.SetActiveConfig(testConfig(t))
	rec.RecordCall(10, jsonPayload(t, `{"orderNo":"42"}`), jsonPayload(t, `{"status":"ok"}`))
	rec.RecordCall(11, jsonPayload(t, `{"orderNo":"43"}`), nil)

	out := New(rec).RenderDetail()
	if !strings.Contains(out, "2 requests") {
		t.Fatalf("expected pluralized header, got %q", out)
	}
	if !strings.Contains(out, "Call #1") || !strings.Contains(out, "Call #2") {
		t.Fatalf("expected 1-based sequence numbers, got %q", out)
	}

	first := strings.Index(out, "Call #1")
	marker := strings.Index(out, "gw-error")
	if marker < first {
		t.Fatalf("error marker should follow the failed entry only: %q", out)
	}
	if strings.Count(out, "gw-error") != 1 {
		t.Fatalf("expected exactly one error marker, got %q", out)
	}
	if !strings.Contains(out, "no response") {
		t.Fatalf("expected the failed entry to render a response marker: %q", out)
	}
}

func TestPanel_RenderDetail_OverwrittenEntry(t *testing.T) {
	rec := diagnostics.NewRecorder()
	rec.SetActiveConfig(testConfig(t))
	rec.RecordCall(5, jsonPayload(t, `{"orderNo":"first"}`), jsonPayload(t, `{"status":"declined"}`))
	rec.RecordCall(5, jsonPayload(t, `{"orderNo":"second"}`), jsonPayload(t, `{"status":"ok"}`))

	out := New(rec).RenderDetail()
	if !strings.Contains(out, "1 request") {
		t.Fatalf("expected a single request, got %q", out)
	}
	if strings.Contains(out, "first") {
		t.Fatalf("expected the overwritten request to be gone: %q", out)
	}
	if !strings.Contains(out, "second") || !strings.Contains(out, "Call #1") {
		t.Fatalf("expected the replacement at position 1: %q", out)
	}
}

func TestPanel_RenderDetail_EscapesValues(t *testing.T) {
	rec := diagnostics.NewRecorder()
	rec.RecordCall(1, jsonPayload(t, `{"note":"<script>alert(1)</script>"}`), nil)

	out := New(rec).RenderDetail()
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected payload values to be escaped: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped value in %q", out)
	}
}
