// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package signatures

import "piiscan/internal/detector"

// Pattern is one declarative signature entry. CaseInsensitive is an explicit
// per-entry flag rather than something inferred from the expression text.
// NeedsContext marks low-specificity shapes (fixed-length alphanumeric/hex
// runs shared by many providers): their base confidence sits below the
// default acceptance threshold and only the keyword-context boost can lift
// them past it.
type Pattern struct {
	Name            string
	EntityType      string
	Expr            string
	CaseInsensitive bool
	Confidence      float64
	NeedsContext    bool
	Description     string
}

// needsContextConfidence is the base score for NeedsContext entries: below
// the 0.5 default threshold, 0.55 after the +0.15 keyword boost.
const needsContextConfidence = 0.40

// apiKeyPatterns is the provider secret catalog, grouped by category. Sources
// include GitHub secret scanning, gitleaks, and trufflehog pattern sets.
var apiKeyPatterns = []Pattern{
	// --- AI/ML providers ---
	{
		Name:        "openai_api_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sk-(?:proj-|svcacct-|admin-)?[A-Za-z0-9_-]{20,}T3BlbkFJ[A-Za-z0-9_-]{20,})\b`,
		Confidence:  0.95,
		Description: "OpenAI API key (T3BlbkFJ marker)",
	},
	{
		Name:        "openai_project_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sk-proj-[A-Za-z0-9_-]{48,156})\b`,
		Confidence:  0.90,
		Description: "OpenAI project API key",
	},
	{
		Name:        "openai_svcacct_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sk-svcacct-[A-Za-z0-9_-]{20,156})\b`,
		Confidence:  0.90,
		Description: "OpenAI service account key",
	},
	{
		Name:        "openai_admin_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sk-admin-[A-Za-z0-9_-]{20,156})\b`,
		Confidence:  0.90,
		Description: "OpenAI admin key",
	},
	{
		Name:        "anthropic_api_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sk-ant-api03-[a-zA-Z0-9_\-]{93}AA)\b`,
		Confidence:  0.95,
		Description: "Anthropic API key",
	},
	{
		Name:        "anthropic_api_key_short",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sk-ant-[a-zA-Z0-9_\-]{32,100})\b`,
		Confidence:  0.85,
		Description: "Anthropic API key (short form)",
	},
	{
		Name:        "huggingface_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(hf_[a-zA-Z0-9]{34,})\b`,
		Confidence:  0.95,
		Description: "Hugging Face access token",
	},
	{
		Name:         "cohere_api_key",
		EntityType:   detector.EntityAPIKey,
		Expr:         `\b([a-zA-Z0-9]{40})\b`,
		Confidence:   needsContextConfidence,
		NeedsContext: true,
		Description:  "Cohere API key",
	},
	{
		Name:        "replicate_api_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(r8_[a-zA-Z0-9]{37})\b`,
		Confidence:  0.95,
		Description: "Replicate API token",
	},
	{
		Name:        "google_ai_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(AIza[A-Za-z0-9_-]{35})\b`,
		Confidence:  0.95,
		Description: "Google AI/Cloud API key",
	},

	// --- Cloud providers ---
	{
		Name:        "aws_access_key_id",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b((?:A3T[A-Z0-9]|AKIA|ASIA|ABIA|ACCA)[A-Z0-9]{16})\b`,
		Confidence:  0.95,
		Description: "AWS access key ID",
	},
	{
		Name:            "aws_secret_access_key",
		EntityType:      detector.EntityAPIKey,
		Expr:            `(?:aws.{0,20}secret|secret.{0,20}key)['"]?\s*[:=]\s*['"]?([A-Za-z0-9/+=]{40})['"]?`,
		CaseInsensitive: true,
		Confidence:      0.90,
		Description:     "AWS secret access key",
	},
	{
		Name:        "azure_client_secret",
		EntityType:  detector.EntityAPIKey,
		Expr:        "(?:^|['\"`\\s>=:(,)])([a-zA-Z0-9_~.]{3}\\dQ~[a-zA-Z0-9_~.-]{31,34})",
		Confidence:  0.90,
		Description: "Azure AD client secret",
	},
	{
		Name:        "azure_storage_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b([A-Za-z0-9+/]{86}==)`,
		Confidence:  0.80,
		Description: "Azure storage account key",
	},
	{
		Name:        "gcp_service_account",
		EntityType:  detector.EntityAPIKey,
		Expr:        `"type"\s*:\s*"service_account"`,
		Confidence:  0.95,
		Description: "Google Cloud service account JSON",
	},
	{
		Name:        "google_oauth_secret",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(GOCSPX-[a-zA-Z0-9_-]{28})\b`,
		Confidence:  0.95,
		Description: "Google OAuth client secret",
	},
	{
		Name:        "alibaba_access_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(LTAI[A-Za-z0-9]{20})\b`,
		Confidence:  0.95,
		Description: "Alibaba Cloud access key",
	},
	{
		Name:         "ibm_cloud_key",
		EntityType:   detector.EntityAPIKey,
		Expr:         `\b([a-zA-Z0-9_-]{44})\b`,
		Confidence:   needsContextConfidence,
		NeedsContext: true,
		Description:  "IBM Cloud API key",
	},
	{
		Name:        "digitalocean_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(do[po]_v1_[a-f0-9]{64})\b`,
		Confidence:  0.95,
		Description: "DigitalOcean access token",
	},
	{
		Name:         "cloudflare_api_token",
		EntityType:   detector.EntityAPIKey,
		Expr:         `\b([A-Za-z0-9_-]{40})\b`,
		Confidence:   needsContextConfidence,
		NeedsContext: true,
		Description:  "Cloudflare API token",
	},
	{
		Name:        "heroku_api_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b([a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})\b`,
		Confidence:  0.75,
		Description: "Heroku API key (UUID form)",
	},

	// --- DevOps & version control ---
	{
		Name:        "github_pat",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(gh[pousr]_[0-9a-zA-Z]{36})\b`,
		Confidence:  0.95,
		Description: "GitHub token",
	},
	{
		Name:        "github_fine_grained",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(github_pat_[0-9a-zA-Z_]{22,82})\b`,
		Confidence:  0.95,
		Description: "GitHub fine-grained PAT",
	},
	{
		Name:        "gitlab_pat",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(glpat-[0-9a-zA-Z_-]{20})\b`,
		Confidence:  0.95,
		Description: "GitLab personal access token",
	},
	{
		Name:        "gitlab_pipeline_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(glptt-[0-9a-f]{40})\b`,
		Confidence:  0.95,
		Description: "GitLab pipeline trigger token",
	},
	{
		Name:        "bitbucket_app_password",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(ATBB[a-zA-Z0-9]{32})\b`,
		Confidence:  0.95,
		Description: "Bitbucket app password",
	},
	{
		Name:        "npm_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(npm_[a-zA-Z0-9]{36})\b`,
		Confidence:  0.95,
		Description: "npm access token",
	},
	{
		Name:        "pypi_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(pypi-[A-Za-z0-9_-]{100,})\b`,
		Confidence:  0.95,
		Description: "PyPI API token",
	},
	{
		Name:        "docker_pat",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(dckr_pat_[a-zA-Z0-9_-]{27})\b`,
		Confidence:  0.95,
		Description: "Docker Hub personal access token",
	},
	{
		Name:         "circleci_token",
		EntityType:   detector.EntityAPIKey,
		Expr:         `\b([a-f0-9]{40})\b`,
		Confidence:   needsContextConfidence,
		NeedsContext: true,
		Description:  "CircleCI token",
	},

	// --- Communications & messaging ---
	{
		Name:        "slack_bot_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(xoxb-[0-9]{10,13}-[0-9]{10,13}[a-zA-Z0-9-]*)\b`,
		Confidence:  0.95,
		Description: "Slack bot token",
	},
	{
		Name:        "slack_user_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(xoxp-[0-9]{10,13}-[0-9]{10,13}[a-zA-Z0-9-]*)\b`,
		Confidence:  0.95,
		Description: "Slack user token",
	},
	{
		Name:        "slack_webhook",
		EntityType:  detector.EntityAPIKey,
		Expr:        `(https?://hooks\.slack\.com/(?:services|workflows|triggers)/[A-Za-z0-9+/]{43,56})`,
		Confidence:  0.95,
		Description: "Slack webhook URL",
	},
	{
		Name:        "discord_bot_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b([MN][A-Za-z\d]{23,}\.[\w-]{6}\.[\w-]{27})\b`,
		Confidence:  0.90,
		Description: "Discord bot token",
	},
	{
		Name:        "discord_webhook",
		EntityType:  detector.EntityAPIKey,
		Expr:        `(https?://(?:ptb\.|canary\.)?discord(?:app)?\.com/api/webhooks/[0-9]+/[A-Za-z0-9_-]+)`,
		Confidence:  0.95,
		Description: "Discord webhook URL",
	},
	{
		Name:        "twilio_api_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(SK[0-9a-fA-F]{32})\b`,
		Confidence:  0.95,
		Description: "Twilio API key",
	},
	{
		Name:        "telegram_bot_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b([0-9]{8,10}:[a-zA-Z0-9_-]{35})\b`,
		Confidence:  0.90,
		Description: "Telegram bot token",
	},

	// --- Email services ---
	{
		Name:        "sendgrid_api_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(SG\.[a-zA-Z0-9_-]{22}\.[a-zA-Z0-9_-]{43})\b`,
		Confidence:  0.95,
		Description: "SendGrid API key",
	},
	{
		Name:        "mailchimp_api_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b([a-f0-9]{32}-us[0-9]{1,2})\b`,
		Confidence:  0.95,
		Description: "Mailchimp API key",
	},
	{
		Name:        "mailgun_api_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(key-[a-zA-Z0-9]{32})\b`,
		Confidence:  0.95,
		Description: "Mailgun API key",
	},

	// --- Payment providers ---
	{
		Name:        "stripe_secret_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sk_(?:test|live|prod)_[a-zA-Z0-9]{10,99})\b`,
		Confidence:  0.95,
		Description: "Stripe secret key",
	},
	{
		Name:        "stripe_restricted_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(rk_(?:test|live|prod)_[a-zA-Z0-9]{10,99})\b`,
		Confidence:  0.95,
		Description: "Stripe restricted key",
	},
	{
		Name:        "stripe_webhook_secret",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(whsec_[a-zA-Z0-9]{32,})\b`,
		Confidence:  0.95,
		Description: "Stripe webhook secret",
	},
	{
		Name:        "square_access_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sq0atp-[a-zA-Z0-9_-]{22})\b`,
		Confidence:  0.95,
		Description: "Square access token",
	},
	{
		Name:        "square_oauth_secret",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sq0csp-[a-zA-Z0-9_-]{43})\b`,
		Confidence:  0.95,
		Description: "Square OAuth secret",
	},
	{
		Name:        "shopify_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(shp(?:at|ca|pa|ss)_[a-fA-F0-9]{32})\b`,
		Confidence:  0.95,
		Description: "Shopify token",
	},

	// --- Databases & data services ---
	{
		Name:        "mongodb_connection",
		EntityType:  detector.EntityAPIKey,
		Expr:        `mongodb(?:\+srv)?://[^\s"']+:[^\s"']+@[^\s"']+`,
		Confidence:  0.90,
		Description: "MongoDB connection string",
	},
	{
		Name:        "postgres_connection",
		EntityType:  detector.EntityAPIKey,
		Expr:        `postgres(?:ql)?://[^\s"']+:[^\s"']+@[^\s"']+`,
		Confidence:  0.90,
		Description: "PostgreSQL connection string",
	},
	{
		Name:        "mysql_connection",
		EntityType:  detector.EntityAPIKey,
		Expr:        `mysql://[^\s"']+:[^\s"']+@[^\s"']+`,
		Confidence:  0.90,
		Description: "MySQL connection string",
	},
	{
		Name:        "redis_connection",
		EntityType:  detector.EntityAPIKey,
		Expr:        `redis://[^\s"']*:[^\s"']+@[^\s"']+`,
		Confidence:  0.90,
		Description: "Redis connection string",
	},
	{
		Name:        "supabase_key",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sbp_[a-f0-9]{40})\b`,
		Confidence:  0.95,
		Description: "Supabase service key",
	},
	{
		Name:        "planetscale_password",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(pscale_pw_[a-zA-Z0-9_-]{43})\b`,
		Confidence:  0.95,
		Description: "PlanetScale password",
	},

	// --- Monitoring & analytics ---
	{
		Name:         "datadog_api_key",
		EntityType:   detector.EntityAPIKey,
		Expr:         `\b([a-f0-9]{32})\b`,
		Confidence:   needsContextConfidence,
		NeedsContext: true,
		Description:  "Datadog API key",
	},
	{
		Name:        "sentry_dsn",
		EntityType:  detector.EntityAPIKey,
		Expr:        `(https://[a-f0-9]+@(?:[a-z0-9]+\.)?sentry\.io/[0-9]+)`,
		Confidence:  0.95,
		Description: "Sentry DSN",
	},
	{
		Name:        "sentry_auth_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(sntrys_[a-zA-Z0-9]{64})\b`,
		Confidence:  0.95,
		Description: "Sentry auth token",
	},

	// --- Social & auth providers ---
	{
		Name:        "facebook_access_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(EAA[a-zA-Z0-9]{100,})\b`,
		Confidence:  0.90,
		Description: "Facebook access token",
	},
	{
		Name:        "twitter_bearer_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(AAAA[A-Za-z0-9%]{40,})\b`,
		Confidence:  0.85,
		Description: "Twitter bearer token",
	},
	{
		Name:        "okta_api_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(00[a-zA-Z0-9_-]{40})\b`,
		Confidence:  0.90,
		Description: "Okta API token",
	},

	// --- Infrastructure ---
	{
		Name:        "vault_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(hv[sb]\.[a-zA-Z0-9_-]{24,})\b`,
		Confidence:  0.95,
		Description: "HashiCorp Vault token",
	},
	{
		Name:        "terraform_cloud_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b([a-zA-Z0-9]{14}\.atlasv1\.[a-zA-Z0-9]{67})\b`,
		Confidence:  0.95,
		Description: "Terraform Cloud token",
	},
	{
		Name:        "pulumi_access_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(pul-[a-f0-9]{40})\b`,
		Confidence:  0.95,
		Description: "Pulumi access token",
	},
	{
		Name:            "netlify_access_token",
		EntityType:      detector.EntityAPIKey,
		Expr:            `(?:netlify)['"]?\s*[:=]\s*['"]?([a-z0-9=_\-]{40,46})`,
		CaseInsensitive: true,
		Confidence:      0.85,
		Description:     "Netlify access token",
	},

	// --- Generic private keys ---
	{
		Name:        "private_key_header",
		EntityType:  detector.EntityAPIKey,
		Expr:        `-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP |ENCRYPTED )?PRIVATE KEY(?: BLOCK)?-----`,
		Confidence:  0.95,
		Description: "Private key material",
	},

	// --- Generic tokens (anchored by scheme keyword) ---
	{
		Name:            "bearer_token",
		EntityType:      detector.EntityAPIKey,
		Expr:            `bearer\s+([a-zA-Z0-9_\-.=]{20,})`,
		CaseInsensitive: true,
		Confidence:      0.80,
		Description:     "Bearer token",
	},
	{
		Name:            "basic_auth",
		EntityType:      detector.EntityAPIKey,
		Expr:            `basic\s+([a-zA-Z0-9+/=]{20,})`,
		CaseInsensitive: true,
		Confidence:      0.80,
		Description:     "Basic auth credentials",
	},
	{
		Name:        "jwt_token",
		EntityType:  detector.EntityAPIKey,
		Expr:        `\b(eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*)\b`,
		Confidence:  0.85,
		Description: "JWT token",
	},
}

// DefaultPatterns returns the full built-in catalog: the provider secret
// catalog followed by the PII families. Order matters only for reporting;
// overlap between entries is resolved downstream.
func DefaultPatterns() []Pattern {
	out := make([]Pattern, 0, len(apiKeyPatterns)+len(piiPatterns))
	out = append(out, apiKeyPatterns...)
	out = append(out, piiPatterns...)
	return out
}
