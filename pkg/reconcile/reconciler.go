package reconcile

import (
	"aliasgc/pkg/types"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/route53"
	log "github.com/sirupsen/logrus"
)

// LoadBalancerLister is the merged load balancer inventory, keyed by
// DNS name.
type LoadBalancerLister interface {
	List() (map[string]types.LoadBalancerRecord, error)
}

// ZoneAPI covers the Route 53 operations the reconciler drives.
type ZoneAPI interface {
	ListPublicHostedZones() ([]types.HostedZone, error)
	ListRecordSets(zoneID string) ([]*route53.ResourceRecordSet, error)
	DeleteRecordSet(zoneID string, record *route53.ResourceRecordSet) error
}

// DeleteHook is invoked after each successfully deleted record.
type DeleteHook interface {
	Run(name, target string) error
}

type Reconciler struct {
	lbs   LoadBalancerLister
	zones ZoneAPI
	hook  DeleteHook
}

func New(lbs LoadBalancerLister, zones ZoneAPI, hook DeleteHook) *Reconciler {
	return &Reconciler{lbs: lbs, zones: zones, hook: hook}
}

// Run performs one reconciliation pass. A nil return means the pass
// completed or deliberately abstained. Any listing failure aborts the
// pass before records are marked, so an enumeration error can never be
// mistaken for an empty inventory.
func (r *Reconciler) Run() error {
	lbs, err := r.lbs.List()
	if err != nil {
		return err
	}

	zones, err := r.zones.ListPublicHostedZones()
	if err != nil {
		return err
	}

	if len(zones) == 0 {
		log.Info("no public hosted zones found, nothing to do")
		return nil
	}

	if len(zones) > 1 {
		log.Warnf("found %d public hosted zones, refusing to guess which one to reconcile", len(zones))
		return nil
	}

	zone := zones[0]
	log.Infof("processing zone %s (%s) with %d record sets", zone.Name, zone.ID, zone.RecordCount)

	records, err := r.zones.ListRecordSets(zone.ID)
	if err != nil {
		return err
	}

	orphans := Orphans(lbs, records)
	log.Infof("%d of %d record sets no longer match an active load balancer", len(orphans), len(records))

	var failed []string
	for _, record := range orphans {
		name := aws.StringValue(record.Name)

		if err := r.zones.DeleteRecordSet(zone.ID, record); err != nil {
			log.Errorf("unable to delete record set %s: %s", name, err)
			failed = append(failed, name)
			continue
		}

		log.Infof("removed record set %s", name)

		if r.hook != nil {
			if hookErr := r.hook.Run(name, TargetName(record)); hookErr != nil {
				log.Errorf("delete-hook failed for %s: %s", name, hookErr)
			}
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d record sets could not be deleted: %s", len(failed), strings.Join(failed, ", "))
	}

	return nil
}

// TargetName returns the record's alias target DNS name with a single
// trailing dot stripped, or "" when the record has no alias target.
func TargetName(record *route53.ResourceRecordSet) string {
	if record.AliasTarget == nil {
		return ""
	}

	return strings.TrimSuffix(aws.StringValue(record.AliasTarget.DNSName), ".")
}

// Orphans returns the alias A records whose target does not match any
// load balancer DNS name. An empty inventory therefore marks every
// alias A record in the zone.
func Orphans(lbs map[string]types.LoadBalancerRecord, records []*route53.ResourceRecordSet) []*route53.ResourceRecordSet {
	active := make(types.Set[string])
	for name := range lbs {
		active.Add(name)
	}

	targets := make(types.Set[string])
	aliases := make([]*route53.ResourceRecordSet, 0)

	for _, record := range records {
		if aws.StringValue(record.Type) != route53.RRTypeA || record.AliasTarget == nil {
			continue
		}

		targets.Add(TargetName(record))
		aliases = append(aliases, record)
	}

	stale := targets.Diff(active)
	if len(stale) > 0 {
		log.Debugf("stale alias targets: %v", stale.Values())
	}

	orphans := make([]*route53.ResourceRecordSet, 0)
	for _, record := range aliases {
		if stale.Has(TargetName(record)) {
			orphans = append(orphans, record)
		}
	}

	return orphans
}
