package config

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

var ErrMissingToken = errors.New("BOT_TOKEN environment variable is not set")

type Config struct {
	Dev              bool   `envconfig:"DEV" default:"false"`
	BotToken         string `envconfig:"BOT_TOKEN"`
	BotTokenSSMParam string `envconfig:"BOT_TOKEN_SSM_PARAM"`
	// AdminID of 0 matches no real user.
	AdminID        int64  `envconfig:"ADMIN_ID" default:"0"`
	Port           int    `envconfig:"PORT" default:"8443"`
	WebhookBaseURL string `envconfig:"WEBHOOK_BASE_URL" default:"https://sm-testing-bot-v2.onrender.com"`
	WatchURL       string `envconfig:"WATCH_URL" default:"https://study-material-testing.vercel.app/"`
	UsersFile      string `envconfig:"USERS_FILE" default:"users.json"`
	DBPath         string `envconfig:"DB_PATH" default:"data/broadcasts.db"`
}

type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewConfig reads the environment. When BOT_TOKEN is empty and BOT_TOKEN_SSM_PARAM is set,
// the token is read from AWS SSM Parameter Store.
func NewConfig(ctx context.Context) (*Config, error) {
	res := &Config{}
	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.BotToken == "" && res.BotTokenSSMParam != "" {
		client, err := newSSMClient(ctx)
		if err != nil {
			return nil, err
		}
		if err := res.resolveToken(ctx, client); err != nil {
			return nil, err
		}
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return ErrMissingToken
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.UsersFile == "" {
		return errors.New("users file path is required")
	}
	return nil
}

// ListenAddr binds on all interfaces.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// WebhookPath is the callback path, the token is the only secret in it.
func (c *Config) WebhookPath() string {
	return "/" + c.BotToken
}

func (c *Config) WebhookURL() string {
	return strings.TrimSuffix(c.WebhookBaseURL, "/") + c.WebhookPath()
}

func (c *Config) resolveToken(ctx context.Context, client SSMClient) error {
	param, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(c.BotTokenSSMParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return fmt.Errorf("SSM parameter %s: %w", c.BotTokenSSMParam, ErrMissingToken)
	}

	c.BotToken = *param.Parameter.Value
	return nil
}

func newSSMClient(ctx context.Context) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}
