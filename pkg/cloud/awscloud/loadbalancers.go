package awscloud

import (
	"aliasgc/pkg/configuration"
	"aliasgc/pkg/types"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/aws/aws-sdk-go/service/elb/elbiface"
	"github.com/aws/aws-sdk-go/service/elbv2"
	"github.com/aws/aws-sdk-go/service/elbv2/elbv2iface"
	log "github.com/sirupsen/logrus"
)

// LoadBalancerInventory merges the ELBv2 and classic ELB APIs into a
// single view of active load balancers keyed by DNS name.
type LoadBalancerInventory struct {
	elbv2Client elbv2iface.ELBV2API
	elbClient   elbiface.ELBAPI
}

func (l *LoadBalancerInventory) List() (map[string]types.LoadBalancerRecord, error) {
	lbs := make(map[string]types.LoadBalancerRecord)

	err := l.elbv2Client.DescribeLoadBalancersPages(&elbv2.DescribeLoadBalancersInput{},
		func(page *elbv2.DescribeLoadBalancersOutput, lastPage bool) bool {
			for _, lb := range page.LoadBalancers {
				if lb.State == nil || aws.StringValue(lb.State.Code) != elbv2.LoadBalancerStateEnumActive {
					continue
				}

				lbs[aws.StringValue(lb.DNSName)] = types.LoadBalancerRecord{
					DNSName: aws.StringValue(lb.DNSName),
					Kind:    aws.StringValue(lb.Type),
					ARN:     aws.StringValue(lb.LoadBalancerArn),
				}
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("awscloud: describing load balancers failed: %s", err)
	}

	// Classic load balancers have no lifecycle state, so every one
	// counts as active. A duplicate DNS name overwrites the v2 entry.
	cErr := l.elbClient.DescribeLoadBalancersPages(&elb.DescribeLoadBalancersInput{},
		func(page *elb.DescribeLoadBalancersOutput, lastPage bool) bool {
			for _, lb := range page.LoadBalancerDescriptions {
				lbs[aws.StringValue(lb.DNSName)] = types.LoadBalancerRecord{
					DNSName: aws.StringValue(lb.DNSName),
					Kind:    types.KindClassic,
				}
			}
			return true
		})
	if cErr != nil {
		return nil, fmt.Errorf("awscloud: describing classic load balancers failed: %s", cErr)
	}

	log.Debugf("found %d active load balancers", len(lbs))

	return lbs, nil
}

func New(cfg *configuration.Config) (*LoadBalancerInventory, error) {
	sess, err := getAWSSession(cfg.GetRegion())
	if err != nil {
		return nil, fmt.Errorf("awscloud: unable to initialise session: %s", err)
	}

	return &LoadBalancerInventory{
		elbv2Client: elbv2.New(sess),
		elbClient:   elb.New(sess),
	}, nil
}
