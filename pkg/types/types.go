package types

const (
	KindApplication = "application"
	KindNetwork     = "network"
	KindGateway     = "gateway"
	KindClassic     = "classic"
)

// LoadBalancerRecord describes one active load balancer, keyed in the
// merged inventory by its DNS name.
type LoadBalancerRecord struct {
	DNSName string
	Kind    string
	ARN     string // classic load balancers have no ARN
}

type HostedZone struct {
	ID          string
	Name        string
	RecordCount int64
}
