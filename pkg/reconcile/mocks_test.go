package reconcile

import (
	"aliasgc/pkg/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/route53"
)

type fakeLoadBalancers struct {
	lbs         map[string]types.LoadBalancerRecord
	responseErr error
}

func (f *fakeLoadBalancers) List() (map[string]types.LoadBalancerRecord, error) {
	if f.responseErr != nil {
		return nil, f.responseErr
	}

	return f.lbs, nil
}

type fakeZoneAPI struct {
	zones      []types.HostedZone
	zonesErr   error
	records    []*route53.ResourceRecordSet
	recordsErr error
	deleteErrs map[string]error

	recordListCalls int
	deleted         []string
}

func (f *fakeZoneAPI) ListPublicHostedZones() ([]types.HostedZone, error) {
	return f.zones, f.zonesErr
}

func (f *fakeZoneAPI) ListRecordSets(zoneID string) ([]*route53.ResourceRecordSet, error) {
	f.recordListCalls++
	return f.records, f.recordsErr
}

// DeleteRecordSet removes the record from the fake zone so a second
// pass sees the post-delete state.
func (f *fakeZoneAPI) DeleteRecordSet(zoneID string, record *route53.ResourceRecordSet) error {
	name := aws.StringValue(record.Name)

	if err := f.deleteErrs[name]; err != nil {
		return err
	}

	f.deleted = append(f.deleted, name)

	for i, r := range f.records {
		if r == record {
			f.records = append(f.records[:i], f.records[i+1:]...)
			break
		}
	}

	return nil
}

type fakeHook struct {
	calls [][2]string
}

func (f *fakeHook) Run(name, target string) error {
	f.calls = append(f.calls, [2]string{name, target})
	return nil
}
