package googleauth

import (
	"context"
	"errors"
	"fmt"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type googleVerifier struct {
	Client       *http.Client
	TokenInfoURL string
	ClientID     string
	Log          *zap.Logger
}

// NewGoogleVerifier checks ID tokens against Google's tokeninfo endpoint.
func NewGoogleVerifier(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.GoogleTokenVerifier {
	return &googleVerifier{
		Client: &http.Client{
			Timeout: time.Duration(internalConfig.Google.HTTPTimeoutInSeconds) * time.Second,
		},
		TokenInfoURL: internalConfig.Google.TokenInfoURL,
		ClientID:     internalConfig.Google.ClientID,
		Log:          logger,
	}
}

func (g *googleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*contracts.GoogleIdentity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("googleVerifier.VerifyIDToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if g.ClientID == "" {
		return nil, exceptions.ErrGoogleAudienceMismatch(errors.New("GOOGLE_CLIENT_ID is not configured"))
	}

	endpoint := fmt.Sprintf("%s?id_token=%s", g.TokenInfoURL, url.QueryEscape(idToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode != http.StatusOK {
		description := gjson.GetBytes(body, "error_description").String()
		g.Log.Warn("googleVerifier.VerifyIDToken rejected by tokeninfo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("error_description", description),
		)
		return nil, exceptions.ErrGoogleTokenRejected(fmt.Errorf("tokeninfo status %d: %s", resp.StatusCode, description))
	}

	payload := gjson.ParseBytes(body)
	if audience := payload.Get("aud").String(); audience != g.ClientID {
		return nil, exceptions.ErrGoogleAudienceMismatch(fmt.Errorf("audience %q", audience))
	}

	email := payload.Get("email").String()
	if email == "" {
		return nil, exceptions.ErrGoogleTokenRejected(errors.New("token carries no email"))
	}
	// tokeninfo returns booleans as strings
	if verified := payload.Get("email_verified"); verified.Exists() && !verified.Bool() {
		return nil, exceptions.ErrGoogleTokenRejected(errors.New("email is not verified"))
	}

	name := payload.Get("name").String()
	if name == "" {
		name = "Google User"
	}

	g.Log.Info("googleVerifier.VerifyIDToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &contracts.GoogleIdentity{
		Subject: payload.Get("sub").String(),
		Email:   email,
		Name:    name,
	}, nil
}
