package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	dashboard_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/dashboard-dto"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendAlertDigest(to []string, week string, alerts []dashboard_dto.Alert) error
	SendWeeklyReport(to, week string, csvData []byte) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
	}
}

// SendAlertDigest verschickt die Überlastungs-Zusammenfassung der Woche an
// alle Empfänger mit Alert-Berechtigung.
func (m *MailService) SendAlertDigest(to []string, week string, alerts []dashboard_dto.Alert) error {
	log.Info().Str("week", week).Int("alerts", len(alerts)).Msg("Mailer: Alert-Digest wird versendet")

	var lines strings.Builder
	for _, a := range alerts {
		fmt.Fprintf(&lines, "- %s (%s): %.1f %% [%s]\n", a.ResourceName, a.Department, a.UtilizationPct, a.Severity)
	}

	recipients := make([]map[string]string, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, map[string]string{"email": addr})
	}

	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Kapazitäts Meister - Auslastungs-Digest",
		},
		"to":      recipients,
		"subject": fmt.Sprintf("Kapazitäts-Alerts für %s (%d Ressourcen betroffen)", week, len(alerts)),
		"text": fmt.Sprintf(`
		Hallo,

		folgende Ressourcen liegen in Woche %s über ihren Auslastungsschwellen:

		%s
		Bitte prüft die Planung im Dashboard und verteilt die Stunden gegebenenfalls um.

		— Kapazitäts Meister
		`, week, lines.String()),
		"category": "Capacity Alerts",
	}

	return m.post(payload)
}

// SendWeeklyReport hängt den CSV-Report der Woche als Anhang an.
func (m *MailService) SendWeeklyReport(to, week string, csvData []byte) error {
	log.Info().Str("week", week).Str("to", to).Msg("Mailer: Wochenreport wird versendet")

	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Kapazitäts Meister - Wochenreport",
		},
		"to": []map[string]string{
			{"email": to},
		},
		"subject": fmt.Sprintf("Auslastungsreport %s", week),
		"text": fmt.Sprintf(`
		Hallo,

		anbei der Auslastungsreport für die Woche %s als CSV.

		— Kapazitäts Meister
		`, week),
		"attachments": []map[string]string{
			{
				"filename": fmt.Sprintf("utilization-%s.csv", week),
				"type":     "text/csv",
				"content":  base64.StdEncoding.EncodeToString(csvData),
			},
		},
		"category": "Weekly Report",
	}

	return m.post(payload)
}

func (m *MailService) post(payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Serialisieren des Mail-Payloads")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Erstellen des Mail-Requests")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Senden an Mailtrap")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	return nil
}
