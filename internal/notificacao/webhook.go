package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/KromaEnergia/api-fichas/internal/logger"
)

// Webhook avisa um endpoint externo a cada ficha nova. Sem URL, não faz nada.
type Webhook struct {
	URL    string
	Client *http.Client
	log    *logger.Logger
}

func NewWebhook(url string, timeout time.Duration, log *logger.Logger) *Webhook {
	if log == nil {
		log = logger.Nop()
	}
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
		log:    log.WithComponent("webhook"),
	}
}

// FichaCriada envia o aviso. Falhas só vão para o log.
func (w *Webhook) FichaCriada(ctx context.Context, id uuid.UUID, nomeConsultor string) {
	if w.URL == "" {
		return
	}
	if err := w.enviar(ctx, id, nomeConsultor); err != nil {
		w.log.Warnw("erro ao enviar webhook", "ficha_id", id, "error", err)
	}
}

func (w *Webhook) enviar(ctx context.Context, id uuid.UUID, nomeConsultor string) error {
	payload := map[string]string{
		"mensagem":      "Nova ficha de negociação recebida",
		"fichaId":       id.String(),
		"nomeConsultor": nomeConsultor,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook respondeu %d", resp.StatusCode)
	}
	return nil
}
