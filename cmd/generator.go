package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"argus/core"
)

// Vocabularies for synthetic alerts. Distributions follow what production
// cloud security tooling emits: mostly low and medium severity, a thin
// critical tail.
var (
	alertTypes = []string{
		"UnauthorizedAccessAttempt", "SuspiciousAPICall", "DataExfiltration",
		"PrivilegeEscalation", "MaliciousIPConnection", "AnomalousTraffic",
		"FailedLoginAttempt", "ConfigurationChange", "SecurityGroupModification",
		"IAMPolicyChange", "CryptocurrencyMining", "RansomwareActivity",
		"LateralMovement", "CommandAndControl", "DataEncryption",
		"BruteForceAttack", "SQLInjection", "XSSAttack", "DDoSAttack",
		"ZeroDayExploit", "InsiderThreat", "ComplianceViolation",
		"DataBreach", "AccountTakeover", "APTSuspiciousActivity",
	}

	alertSources = []string{
		"AWS-CloudTrail", "AWS-GuardDuty", "AWS-SecurityHub", "AWS-VPCFlowLogs",
		"AWS-WAF", "AWS-Shield", "GCP-CloudLogging", "GCP-SecurityCommandCenter",
		"Azure-SecurityCenter", "Azure-Sentinel", "Cloudflare-Logs",
		"Datadog-Security", "Splunk-Enterprise", "Elastic-Security",
	}

	severityWeights = []weighted{
		{core.SeverityLow, 0.30},
		{core.SeverityMedium, 0.30},
		{core.SeverityHigh, 0.25},
		{core.SeverityCritical, 0.15},
	}

	statusWeights = []weighted{
		{core.StatusOpen, 0.30},
		{core.StatusInProgress, 0.20},
		{core.StatusClosed, 0.30},
		{core.StatusResolved, 0.20},
	}

	regions = []regionInfo{
		{"us-east-1", "USA", 39.8283, -98.5795},
		{"us-west-2", "USA", 45.5152, -122.6784},
		{"eu-west-1", "Ireland", 53.4129, -8.2439},
		{"ap-southeast-1", "Singapore", 1.3521, 103.8198},
		{"sa-east-1", "Brazil", -23.5505, -46.6333},
		{"ap-northeast-1", "Japan", 35.6762, 139.6503},
		{"eu-central-1", "Germany", 50.1109, 8.6821},
		{"ap-south-1", "India", 19.0760, 72.8777},
		{"ca-central-1", "Canada", 45.5017, -73.5673},
		{"eu-north-1", "Sweden", 59.3293, 18.0686},
	}

	resourceTypes = []string{
		"EC2-Instance", "S3-Bucket", "RDS-Database", "Lambda-Function",
		"IAM-Role", "VPC-Subnet", "CloudFront-Distribution", "ELB-LoadBalancer",
		"EKS-Cluster", "ECS-Service", "DynamoDB-Table", "ElastiCache-Cluster",
		"KMS-Key", "SecretsManager-Secret", "CloudWatch-LogGroup",
	}

	threatActors = []actorInfo{
		{"APT28", "Russia", "high"},
		{"Lazarus", "North Korea", "critical"},
		{"FIN7", "Unknown", "high"},
		{"Scattered Spider", "USA", "critical"},
		{"Unknown", "Unknown", "low"},
	}

	complianceFrameworks = []string{"SOC2", "PCI-DSS", "HIPAA", "GDPR", "ISO27001", "NIST", "CIS"}

	protocols       = []string{"TCP", "UDP", "HTTP", "HTTPS", "SSH"}
	ports           = []int{22, 80, 443, 3389, 5432, 3306, 8080}
	iocTypes        = []string{"IP", "Domain", "Hash", "URL"}
	complexities    = []string{"low", "medium", "high"}
	exploitability  = []string{"none", "low", "medium", "high", "critical"}
	classifications = []string{"Public", "Internal", "Confidential", "Restricted"}
	userRoles       = []string{"admin", "developer", "viewer", "operator"}
	ruleCategories  = []string{"Network", "Identity", "Data", "Compliance", "Threat"}
)

type weighted struct {
	value  string
	weight float64
}

type regionInfo struct {
	code    string
	country string
	lat     float64
	lon     float64
}

type actorInfo struct {
	name    string
	country string
	risk    string
}

// generator produces synthetic alerts over a time window.
type generator struct {
	rng   *rand.Rand
	start time.Time
	end   time.Time
}

// newGenerator creates a generator for the window [now-days, now]. A fixed
// seed yields a reproducible dataset.
func newGenerator(seed int64, days int, now time.Time) *generator {
	return &generator{
		rng:   rand.New(rand.NewSource(seed)),
		start: now.AddDate(0, 0, -days),
		end:   now,
	}
}

func (g *generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *generator) pickWeighted(choices []weighted) string {
	r := g.rng.Float64()
	acc := 0.0
	for _, c := range choices {
		acc += c.weight
		if r < acc {
			return c.value
		}
	}
	return choices[len(choices)-1].value
}

// uuid draws identity bytes from the seeded source so datasets generated
// with the same seed are identical.
func (g *generator) uuid() string {
	return uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
}

func (g *generator) ip() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+g.rng.Intn(255), 1+g.rng.Intn(255), 1+g.rng.Intn(255), 1+g.rng.Intn(255))
}

// riskScore blends severity, detection confidence, and actor risk into a
// 0-100 score.
func riskScore(severity string, confidence int, actorRisk string) float64 {
	base := map[string]float64{
		core.SeverityLow:      20,
		core.SeverityMedium:   50,
		core.SeverityHigh:     75,
		core.SeverityCritical: 95,
	}
	actor := map[string]float64{"low": 10, "high": 30, "critical": 40}

	score := base[severity] + float64(confidence-70)*0.3 + actor[actorRisk]
	return math.Min(100, score)
}

func threatLevel(score float64) string {
	switch {
	case score > 80:
		return core.SeverityCritical
	case score > 60:
		return core.SeverityHigh
	case score > 40:
		return core.SeverityMedium
	default:
		return core.SeverityLow
	}
}

// costImpact estimates a USD figure scaled by severity and resource type.
func (g *generator) costImpact(severity, resourceType string) float64 {
	base := map[string]float64{
		core.SeverityLow:      10,
		core.SeverityMedium:   100,
		core.SeverityHigh:     1000,
		core.SeverityCritical: 10000,
	}
	multipliers := map[string]float64{
		"S3-Bucket": 1.5, "RDS-Database": 2.0, "Lambda-Function": 0.5,
		"EC2-Instance": 1.0, "EKS-Cluster": 3.0,
	}
	mult, ok := multipliers[resourceType]
	if !ok {
		mult = 1.0
	}
	return base[severity] * mult * (0.5 + 1.5*g.rng.Float64())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Alert produces one synthetic alert with all facets populated.
func (g *generator) Alert() *core.Alert {
	alertType := g.pick(alertTypes)
	severity := g.pickWeighted(severityWeights)
	status := g.pickWeighted(statusWeights)
	region := regions[g.rng.Intn(len(regions))]
	resourceType := g.pick(resourceTypes)
	actor := threatActors[g.rng.Intn(len(threatActors))]

	window := g.end.Sub(g.start)
	timestamp := g.start.Add(time.Duration(g.rng.Int63n(int64(window)))).UTC().Format(time.RFC3339)

	sourceIP := g.ip()
	destinationIP := g.ip()
	confidence := 70 + g.rng.Intn(31)
	score := riskScore(severity, confidence, actor.risk)

	resourceName := fmt.Sprintf("%s_%d", resourceType, 1000+g.rng.Intn(99000))
	resourceID := fmt.Sprintf("%s-%d", resourceType, 100000+g.rng.Intn(900000))
	userID := fmt.Sprintf("user_%d", 1+g.rng.Intn(10000))
	accountID := fmt.Sprintf("%d", 100000000000+g.rng.Int63n(900000000000))

	frameworks := g.sampleFrameworks()
	violationSeverity := "none"
	if len(frameworks) > 0 {
		violationSeverity = "high"
	}

	downtime := 0
	if severity == core.SeverityHigh || severity == core.SeverityCritical {
		downtime = g.rng.Intn(1441)
	}
	dataLoss := 0
	if alertType == "DataExfiltration" || alertType == "DataEncryption" || alertType == "DataBreach" {
		dataLoss = g.rng.Intn(10001)
	}

	lat, lon := region.lat, region.lon
	id := g.uuid()

	alert := &core.Alert{
		ID:        id,
		AlertID:   id,
		UUID:      id,
		Severity:  severity,
		Status:    status,
		Source:    g.pick(alertSources),
		Type:      alertType,
		Message:   fmt.Sprintf("%s from %s targeting %s", alertType, sourceIP, resourceName),
		Timestamp: timestamp,
		Time:      timestamp,
		Resource: &core.Resource{
			Name:      resourceName,
			Type:      resourceType,
			ID:        resourceID,
			Region:    region.code,
			Country:   region.country,
			Latitude:  &lat,
			Longitude: &lon,
		},
		Network: &core.Network{
			SourceIP:      sourceIP,
			DestinationIP: destinationIP,
			Protocol:      g.pick(protocols),
			Port:          ports[g.rng.Intn(len(ports))],
		},
		ThreatIntelligence: &core.ThreatIntelligence{
			ThreatActor:        actor.name,
			ThreatActorCountry: actor.country,
			ThreatActorRisk:    actor.risk,
			AttackStage:        g.pick(core.KillChainStages),
			IOCType:            g.pick(iocTypes),
			IOCValue:           fmt.Sprintf("%s.%s", g.pick([]string{"malicious", "suspicious", "compromised"}), g.pick([]string{"com", "net", "org"})),
		},
		RiskAnalysis: &core.RiskAnalysis{
			RiskScore:        round2(score),
			Confidence:       &confidence,
			ThreatLevel:      threatLevel(score),
			AttackComplexity: g.pick(complexities),
			Exploitability:   g.pick(exploitability),
		},
		Compliance: &core.Compliance{
			Frameworks:         frameworks,
			ViolationSeverity:  violationSeverity,
			DataClassification: g.pick(classifications),
		},
		CostImpact: &core.CostImpact{
			EstimatedCostUSD: round2(g.costImpact(severity, resourceType)),
			DowntimeMinutes:  downtime,
			DataLossMB:       dataLoss,
		},
		UserContext: &core.UserContext{
			UserID:       userID,
			AccountID:    accountID,
			UserRole:     g.pick(userRoles),
			IsPrivileged: g.rng.Intn(2) == 1,
		},
		Metadata: &core.Metadata{
			DetectionRule:     fmt.Sprintf("rule_%d", 1+g.rng.Intn(500)),
			RuleCategory:      g.pick(ruleCategories),
			AffectedAccounts:  1 + g.rng.Intn(10),
			AffectedResources: 1 + g.rng.Intn(50),
		},
	}

	// Roughly a third of alerts share correlation chains.
	if g.rng.Float64() > 0.7 {
		corrID := g.uuid()
		alert.Metadata.CorrelationID = &corrID
	}

	return alert
}

// sampleFrameworks picks 0-3 distinct compliance frameworks.
func (g *generator) sampleFrameworks() []string {
	n := g.rng.Intn(4)
	picked := make([]string, 0, n)
	perm := g.rng.Perm(len(complianceFrameworks))
	for _, idx := range perm[:n] {
		picked = append(picked, complianceFrameworks[idx])
	}
	return picked
}
