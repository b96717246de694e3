package dns

import (
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
)

type mockRoute53 struct {
	zones       []*route53.HostedZone
	recordPages []*route53.ListResourceRecordSetsOutput
	responseErr error
	changes     []*route53.ChangeResourceRecordSetsInput
	route53iface.Route53API
}

func (m *mockRoute53) ListHostedZones(*route53.ListHostedZonesInput) (*route53.ListHostedZonesOutput, error) {
	if m.responseErr != nil {
		return nil, m.responseErr
	}

	return &route53.ListHostedZonesOutput{HostedZones: m.zones}, nil
}

// ListResourceRecordSetsPages delivers every configured page first and
// only then surfaces responseErr, mimicking a failure mid-pagination.
func (m *mockRoute53) ListResourceRecordSetsPages(_ *route53.ListResourceRecordSetsInput, fn func(*route53.ListResourceRecordSetsOutput, bool) bool) error {
	for i, page := range m.recordPages {
		if !fn(page, i == len(m.recordPages)-1) {
			break
		}
	}

	return m.responseErr
}

func (m *mockRoute53) ChangeResourceRecordSets(input *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
	if m.responseErr != nil {
		return nil, m.responseErr
	}

	m.changes = append(m.changes, input)
	return &route53.ChangeResourceRecordSetsOutput{}, nil
}
