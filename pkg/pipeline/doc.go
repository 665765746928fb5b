/*
Package pipeline chains rule controllers into a directed sequence of stages.

Each stage combines two crisp values with a controller and defuzzifies the result through an
output variable. The crisp value it produces is published under the stage name and may feed
later stages. Stages whose inputs are all available run concurrently; a failing stage is
reported as a *StageError naming it.

	p, err := pipeline.New([]string{"humidity", "temperature", "nappe"}, []pipeline.Stage{
		{Name: "spray", Controller: sprayCtl, Output: spray, InputA: "humidity", InputB: "temperature"},
		{Name: "real_spray", Controller: realCtl, Output: spray, InputA: "spray", InputB: "nappe"},
	})
	res, err := p.Run(ctx, map[string]float64{"humidity": 65, "temperature": 33, "nappe": 1.75})
	fmt.Println(res.Crisp())
*/
package pipeline
