/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/anbesabank/fyda-otp/cmd/common"
	"github.com/anbesabank/fyda-otp/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the fyda-otp instance on. Format: HostName:Port."
	hostURLEnvKey        = "FYDA_OTP_HOST_URL"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "FYDA_OTP_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "FYDA_OTP_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-cert-file"
	tlsCertificateFlagUsage = "TLS certificate for the fyda-otp server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "FYDA_OTP_TLS_CERT_FILE"

	tlsKeyFlagName  = "tls-key-file"
	tlsKeyFlagUsage = "TLS key for the fyda-otp server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "FYDA_OTP_TLS_KEY_FILE"

	relayURLFlagName  = "relay-url"
	relayURLFlagUsage = "Base URL of the relay notified after a successful verification." +
		" The callback is sent to <relay-url>/callback. Default: " + defaultRelayURL + ". " +
		commonEnvVarUsageText + relayURLEnvKey
	relayURLEnvKey = "FYDA_OTP_RELAY_URL"

	authorizationCodeFlagName  = "authorization-code"
	authorizationCodeFlagUsage = "Authorization code sent to the relay. Default: " + defaultAuthorizationCode + ". " +
		commonEnvVarUsageText + authorizationCodeEnvKey
	authorizationCodeEnvKey = "FYDA_OTP_AUTHORIZATION_CODE"

	acceptedOTPFlagName  = "accepted-otp"
	acceptedOTPFlagUsage = "The six digit code accepted by the simulated verifier. Default: " + defaultAcceptedOTP + ". " +
		commonEnvVarUsageText + acceptedOTPEnvKey
	acceptedOTPEnvKey = "FYDA_OTP_ACCEPTED_OTP"

	simulatedLatencyFlagName  = "simulated-latency"
	simulatedLatencyFlagUsage = "Delay of the simulated OTP delivery and verification, e.g. 1s. Default: 1s. " +
		commonEnvVarUsageText + simulatedLatencyEnvKey
	simulatedLatencyEnvKey = "FYDA_OTP_SIMULATED_LATENCY"

	callbackTimeoutFlagName  = "callback-timeout"
	callbackTimeoutFlagUsage = "Timeout of the relay callback request, e.g. 10s. Default: 10s. " +
		commonEnvVarUsageText + callbackTimeoutEnvKey
	callbackTimeoutEnvKey = "FYDA_OTP_CALLBACK_TIMEOUT"

	secureCookieFlagName  = "secure-cookie"
	secureCookieFlagUsage = "Mark the session cookie as Secure. Possible values [true] [false]." +
		" Defaults to true when the server runs with TLS. " + commonEnvVarUsageText + secureCookieEnvKey
	secureCookieEnvKey = "FYDA_OTP_SECURE_COOKIE"

	metricsProviderFlagName         = "metrics-provider"
	metricsProviderEnvKey           = "FYDA_OTP_METRICS_PROVIDER"
	allowedMetricsProviderFlagUsage = "The metrics provider for fyda-otp (e.g. prometheus etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName             = "prom-http-url"
	promHTTPURLEnvKey               = "FYDA_OTP_PROM_HTTP_URL"
	allowedPromHTTPURLFlagNameUsage = "URL of the internal server exposing /metrics, /ready and /health." +
		" Required for the prometheus metrics provider. Format: HostName:Port. " + commonEnvVarUsageText + promHTTPURLEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "FYDA_OTP_TRACING_PROVIDER"
	tracingProviderFlagUsage = "The tracing provider (JAEGER, STDOUT). " +
		commonEnvVarUsageText + tracingProviderEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "FYDA_OTP_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: fyda-otp. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	defaultRelayURL           = "http://localhost:8290/api/nid"
	defaultAuthorizationCode  = "abc123"
	defaultAcceptedOTP        = "123456"
	defaultSimulatedLatency   = time.Second
	defaultCallbackTimeout    = 10 * time.Second
	defaultTracingServiceName = "fyda-otp"

	prometheusMetricsProvider = "prometheus"
)

type startupParameters struct {
	hostURL                string
	relayURL               string
	authorizationCode      string
	acceptedOTP            string
	simulatedLatency       time.Duration
	callbackTimeout        time.Duration
	secureCookie           *bool
	logLevel               string
	tlsParameters          *tlsParameters
	sessionStoreParameters *common.SessionStoreParameters
	metricsProviderName    string
	internalHostURL        string
	tracingParams          *tracingParams
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

// nolint: funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	relayURL, err := getRelayURL(cmd)
	if err != nil {
		return nil, err
	}

	authorizationCode := getOptionalString(cmd, authorizationCodeFlagName, authorizationCodeEnvKey,
		defaultAuthorizationCode)

	acceptedOTP, err := getAcceptedOTP(cmd)
	if err != nil {
		return nil, err
	}

	simulatedLatency, err := getDuration(cmd, simulatedLatencyFlagName, simulatedLatencyEnvKey,
		defaultSimulatedLatency)
	if err != nil {
		return nil, err
	}

	callbackTimeout, err := getDuration(cmd, callbackTimeoutFlagName, callbackTimeoutEnvKey, defaultCallbackTimeout)
	if err != nil {
		return nil, err
	}

	secureCookie, err := getSecureCookie(cmd)
	if err != nil {
		return nil, err
	}

	sessionStoreParams, err := common.SessionStoreParams(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName, err := getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	internalHostURL, err := cmdutils.GetUserSetVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey,
		metricsProviderName != prometheusMetricsProvider)
	if err != nil {
		return nil, err
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &startupParameters{
		hostURL:                hostURL,
		relayURL:               relayURL,
		authorizationCode:      authorizationCode,
		acceptedOTP:            acceptedOTP,
		simulatedLatency:       simulatedLatency,
		callbackTimeout:        callbackTimeout,
		secureCookie:           secureCookie,
		logLevel:               logLevel,
		tlsParameters:          tlsParams,
		sessionStoreParameters: sessionStoreParams,
		metricsProviderName:    metricsProviderName,
		internalHostURL:        internalHostURL,
		tracingParams:          tracingParams,
	}, nil
}

func getRelayURL(cmd *cobra.Command) (string, error) {
	relayURL := getOptionalString(cmd, relayURLFlagName, relayURLEnvKey, defaultRelayURL)

	u, err := url.Parse(relayURL)
	if err != nil {
		return "", fmt.Errorf("invalid relay url [%s]: %w", relayURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid relay url [%s]: scheme must be http or https", relayURL)
	}

	return relayURL, nil
}

func getAcceptedOTP(cmd *cobra.Command) (string, error) {
	code := getOptionalString(cmd, acceptedOTPFlagName, acceptedOTPEnvKey, defaultAcceptedOTP)

	if len(code) != 6 { //nolint:gomnd
		return "", fmt.Errorf("invalid accepted otp: must be 6 digits")
	}

	for _, r := range code {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid accepted otp: must be 6 digits")
		}
	}

	return code, nil
}

func getSecureCookie(cmd *cobra.Command) (*bool, error) {
	value := cmdutils.GetUserSetOptionalVarFromString(cmd, secureCookieFlagName, secureCookieEnvKey)
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	secure, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s [%s]: %w", secureCookieFlagName, value, err)
	}

	return &secure, nil
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)

	if metricsProvider != "" && metricsProvider != prometheusMetricsProvider {
		return "", fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return metricsProvider, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPoolString := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey)

	tlsSystemCertPool := false

	if tlsSystemCertPoolString != "" {
		var err error

		tlsSystemCertPool, err = strconv.ParseBool(tlsSystemCertPoolString)
		if err != nil {
			return nil, err
		}
	}

	tlsCACerts := cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	tlsServeCertPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey)

	tlsServeKeyPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey)

	if (tlsServeCertPath == "") != (tlsServeKeyPath == "") {
		return nil, fmt.Errorf("both %s and %s must be set to serve TLS", tlsCertificateFlagName, tlsKeyFlagName)
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        tlsCACerts,
		serveCertPath:  tlsServeCertPath,
		serveKeyPath:   tlsServeKeyPath,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	if timeout < 0 {
		return -1, fmt.Errorf("invalid value [%s]: must not be negative", timeoutStr)
	}

	return timeout, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)

	if exporter != tracing.None && !tracing.IsExportedSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}

	return &tracingParams{
		exporter: exporter,
		serviceName: getOptionalString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey,
			defaultTracingServiceName),
	}, nil
}

func getOptionalString(cmd *cobra.Command, flagName, envKey, defaultValue string) string {
	if value := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey); value != "" {
		return value
	}

	return defaultValue
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().StringP(relayURLFlagName, "", "", relayURLFlagUsage)
	startCmd.Flags().StringP(authorizationCodeFlagName, "", "", authorizationCodeFlagUsage)
	startCmd.Flags().StringP(acceptedOTPFlagName, "", "", acceptedOTPFlagUsage)
	startCmd.Flags().StringP(simulatedLatencyFlagName, "", "", simulatedLatencyFlagUsage)
	startCmd.Flags().StringP(callbackTimeoutFlagName, "", "", callbackTimeoutFlagUsage)
	startCmd.Flags().StringP(secureCookieFlagName, "", "", secureCookieFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", allowedPromHTTPURLFlagNameUsage)
	startCmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)

	common.Flags(startCmd)
}
