// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"

	"dakgen/pkg/experiment"
	"dakgen/pkg/method"
	"dakgen/pkg/responses"
	"dakgen/pkg/types"
	"dakgen/pkg/variables"
)

// Build turns the decoded study into a typed experiment. This is where the
// dynamically shaped fields (descriptors, levels) are resolved, so shape
// mismatches surface here with the study section named. Cross-field rules
// are checked by the caller through Experiment.Validate.
func (s *Study) Build() (*experiment.Experiment, error) {
	e := experiment.New()

	env := experiment.NewEnvironment()
	env.SetTabularData(s.Environment.TabularData)
	if s.Environment.TabularDataFile != "" {
		if err := env.SetTabularDataFile(s.Environment.TabularDataFile); err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
	}
	e.SetEnvironment(env)

	m, err := s.buildMethod()
	if err != nil {
		return nil, fmt.Errorf("method: %w", err)
	}
	e.SetMethod(m)

	if s.Variables.Kind != "" || s.Variables.Descriptors != nil {
		v, err := s.buildVariables()
		if err != nil {
			return nil, fmt.Errorf("variables: %w", err)
		}
		e.SetVariables(v)
	}

	if s.Interface.AnalysisDriver != "" {
		i, err := s.buildInterface()
		if err != nil {
			return nil, fmt.Errorf("interface: %w", err)
		}
		e.SetInterface(i)
	}

	if s.Responses.Descriptors != nil {
		r, err := s.buildResponses()
		if err != nil {
			return nil, fmt.Errorf("responses: %w", err)
		}
		e.SetResponses(r)
	}

	return e, nil
}

func (s *Study) buildMethod() (method.Block, error) {
	mc := s.Method
	name := mc.Name
	if name == "" {
		name = method.DefaultName
	}

	switch name {
	case method.SamplingName:
		m := method.NewSampling()
		if err := applyBaseMethod(&m.Base, mc); err != nil {
			return nil, err
		}
		if err := applyUncertainty(&m.UncertaintyQuantification, mc); err != nil {
			return nil, err
		}
		return m, nil

	case "vector_parameter_study":
		m := method.NewVectorParameterStudy()
		if err := applyBaseMethod(&m.Base, mc); err != nil {
			return nil, err
		}
		m.SetFinalPoint(mc.FinalPoint...)
		if mc.NumSteps != nil {
			if err := m.SetNumSteps(*mc.NumSteps); err != nil {
				return nil, err
			}
		}
		return m, nil

	case "multidim_parameter_study":
		m := method.NewMultidimParameterStudy()
		if err := applyBaseMethod(&m.Base, mc); err != nil {
			return nil, err
		}
		if err := m.SetPartitions(mc.Partitions...); err != nil {
			return nil, err
		}
		return m, nil

	default:
		m, err := method.New(name)
		if err != nil {
			return nil, err
		}
		if err := applyBaseMethod(m, mc); err != nil {
			return nil, err
		}
		return m, nil
	}
}

func applyBaseMethod(b *method.Base, mc MethodConfig) error {
	if mc.MaxIterations != nil {
		if err := b.SetMaxIterations(*mc.MaxIterations); err != nil {
			return err
		}
	}
	if mc.ConvergenceTolerance != nil {
		if err := b.SetConvergenceTolerance(*mc.ConvergenceTolerance); err != nil {
			return err
		}
	}
	return nil
}

func applyUncertainty(u *method.UncertaintyQuantification, mc MethodConfig) error {
	if mc.BasisPolynomialFamily != "" {
		if err := u.SetBasisPolynomialFamily(method.PolynomialFamily(mc.BasisPolynomialFamily)); err != nil {
			return err
		}
	}
	if mc.ProbabilityLevels != nil {
		l, err := types.LevelsOf(mc.ProbabilityLevels)
		if err != nil {
			return fmt.Errorf("probability_levels: %w", err)
		}
		u.SetProbabilityLevels(l)
	}
	if mc.ResponseLevels != nil {
		l, err := types.LevelsOf(mc.ResponseLevels)
		if err != nil {
			return fmt.Errorf("response_levels: %w", err)
		}
		u.SetResponseLevels(l)
	}
	if mc.Samples != nil {
		if err := u.SetSamples(*mc.Samples); err != nil {
			return err
		}
	}
	if mc.SampleType != "" {
		if err := u.SetSampleType(method.SampleType(mc.SampleType)); err != nil {
			return err
		}
	}
	u.SetSeed(mc.Seed)
	u.SetVarianceBasedDecomp(mc.VarianceBasedDecomp)
	return nil
}

func (s *Study) buildVariables() (variables.Block, error) {
	vc := s.Variables
	kind := vc.Kind
	if kind == "" {
		kind = variables.DefaultKind
	}

	switch kind {
	case "continuous_design":
		v := variables.NewContinuousDesign()
		if vc.Descriptors != nil {
			if err := v.SetDescriptors(vc.Descriptors); err != nil {
				return nil, err
			}
		}
		v.SetInitialPoint(vc.InitialPoint...)
		v.SetLowerBounds(vc.LowerBounds...)
		v.SetUpperBounds(vc.UpperBounds...)
		return v, nil

	case "uniform_uncertain":
		v := variables.NewUniformUncertain()
		if vc.Descriptors != nil {
			if err := v.SetDescriptors(vc.Descriptors); err != nil {
				return nil, err
			}
		}
		v.SetLowerBounds(vc.LowerBounds...)
		v.SetUpperBounds(vc.UpperBounds...)
		return v, nil

	default:
		v, err := variables.New(kind)
		if err != nil {
			return nil, err
		}
		if vc.Descriptors != nil {
			if err := v.SetDescriptors(vc.Descriptors); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

func (s *Study) buildInterface() (*experiment.Interface, error) {
	ic := s.Interface
	i := experiment.NewInterface()
	i.SetID(ic.ID)
	if ic.Mode != "" {
		if err := i.SetMode(experiment.Mode(ic.Mode)); err != nil {
			return nil, err
		}
	}
	i.SetAnalysisDriver(ic.AnalysisDriver)
	if ic.ParametersFile != "" {
		i.SetParametersFile(ic.ParametersFile)
	}
	if ic.ResultsFile != "" {
		i.SetResultsFile(ic.ResultsFile)
	}
	return i, nil
}

func (s *Study) buildResponses() (responses.Block, error) {
	rc := s.Responses
	r := responses.New()
	if err := r.SetDescriptors(rc.Descriptors); err != nil {
		return nil, err
	}
	if rc.Gradients != "" {
		if err := r.SetGradients(responses.Gradients(rc.Gradients)); err != nil {
			return nil, err
		}
	}
	if rc.Hessians != "" {
		if err := r.SetHessians(responses.Hessians(rc.Hessians)); err != nil {
			return nil, err
		}
	}
	return r, nil
}
