package dns

import (
	"aliasgc/pkg/types"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
	log "github.com/sirupsen/logrus"
)

// ZoneService wraps the Route 53 calls the reconciler needs. Route 53
// is a global service, so it uses the ambient session credentials
// rather than the load balancer region.
type ZoneService struct {
	r53Client route53iface.Route53API
}

func (z *ZoneService) ListPublicHostedZones() ([]types.HostedZone, error) {
	resp, err := z.r53Client.ListHostedZones(&route53.ListHostedZonesInput{})
	if err != nil {
		return nil, fmt.Errorf("route-53: listing hosted zones failed: %s", err)
	}

	var zones []types.HostedZone
	for _, zone := range resp.HostedZones {
		if zone.Config != nil && aws.BoolValue(zone.Config.PrivateZone) {
			continue
		}

		zones = append(zones, types.HostedZone{
			ID:          aws.StringValue(zone.Id),
			Name:        aws.StringValue(zone.Name),
			RecordCount: aws.Int64Value(zone.ResourceRecordSetCount),
		})
	}

	return zones, nil
}

// ListRecordSets drains every page of the zone in page order. On error
// the records collected so far are returned alongside the error, so
// callers must not assume the listing is complete.
func (z *ZoneService) ListRecordSets(zoneID string) ([]*route53.ResourceRecordSet, error) {
	var records []*route53.ResourceRecordSet

	input := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
	}

	err := z.r53Client.ListResourceRecordSetsPages(input,
		func(page *route53.ListResourceRecordSetsOutput, lastPage bool) bool {
			records = append(records, page.ResourceRecordSets...)
			return true
		})
	if err != nil {
		return records, fmt.Errorf("route-53: listing record sets for zone %s failed: %s", zoneID, err)
	}

	return records, nil
}

// DeleteRecordSet issues a single-change DELETE batch. Route 53
// requires the full original record set to identify the record.
func (z *ZoneService) DeleteRecordSet(zoneID string, record *route53.ResourceRecordSet) error {
	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &route53.ChangeBatch{
			Changes: []*route53.Change{
				{
					Action:            aws.String(route53.ChangeActionDelete),
					ResourceRecordSet: record,
				},
			},
		},
	}

	log.Debugf("deleting record set %s", aws.StringValue(record.Name))

	if _, err := z.r53Client.ChangeResourceRecordSets(input); err != nil {
		return fmt.Errorf("route-53: deleting record set %s failed: %s", aws.StringValue(record.Name), err)
	}

	return nil
}

func NewZoneService() (*ZoneService, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("route-53: unable to initialise session: %s", err)
	}

	return &ZoneService{r53Client: route53.New(sess)}, nil
}
