package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/asace-youth/event-registration/api"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type SSMGetParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// secretStore reads secrets from the environment locally and from SSM
// Parameter Store in prod.
type secretStore struct {
	env    api.Environment
	client SSMGetParameterAPI
	prefix string
}

func newSecretStore(env api.Environment, client SSMGetParameterAPI) *secretStore {
	return &secretStore{
		env:    env,
		client: client,
		prefix: getEnvOrDefault("SSM_PARAMETER_PREFIX", "/asace-registration/"),
	}
}

func (s *secretStore) get(ctx context.Context, envKey string, parameterName string) (string, error) {
	if s.env == api.LOCAL {
		v, ok := os.LookupEnv(envKey)
		if !ok {
			return "", fmt.Errorf("%s is not set", envKey)
		}
		return v, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	name := s.prefix + parameterName
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get parameter %q: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %q has no value", name)
	}

	return *out.Parameter.Value, nil
}
