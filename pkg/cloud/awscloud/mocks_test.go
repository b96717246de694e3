package awscloud

import (
	"github.com/aws/aws-sdk-go/service/elb"
	"github.com/aws/aws-sdk-go/service/elb/elbiface"
	"github.com/aws/aws-sdk-go/service/elbv2"
	"github.com/aws/aws-sdk-go/service/elbv2/elbv2iface"
)

type mockELBV2Service struct {
	pages       []*elbv2.DescribeLoadBalancersOutput
	responseErr error
	elbv2iface.ELBV2API
}

func (m *mockELBV2Service) DescribeLoadBalancersPages(_ *elbv2.DescribeLoadBalancersInput, fn func(*elbv2.DescribeLoadBalancersOutput, bool) bool) error {
	if m.responseErr != nil {
		return m.responseErr
	}

	for i, page := range m.pages {
		if !fn(page, i == len(m.pages)-1) {
			break
		}
	}

	return nil
}

type mockELBService struct {
	pages       []*elb.DescribeLoadBalancersOutput
	responseErr error
	elbiface.ELBAPI
}

func (m *mockELBService) DescribeLoadBalancersPages(_ *elb.DescribeLoadBalancersInput, fn func(*elb.DescribeLoadBalancersOutput, bool) bool) error {
	if m.responseErr != nil {
		return m.responseErr
	}

	for i, page := range m.pages {
		if !fn(page, i == len(m.pages)-1) {
			break
		}
	}

	return nil
}
