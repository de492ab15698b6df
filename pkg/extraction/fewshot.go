package extraction

// The one worked example supplied with every extraction call: the WGEA mining
// industry snapshot transcript and its fully populated structured answer.
// Extraction quality degrades measurably without it; treat it as
// configuration, not sample data.

const exampleTranscript = `December 2023
WGEA Mining Industry Snapshot
About this Snapshot
. This Industry Snapshot is a summary of performance against the Gender Equality Indicators of all
employers in the Mining industry from their 2022-23 submission to the Workplace Gender Equality
Agency's (WGEA) annual Gender Equality Reporting.
· Employers should read this Snapshot in conjunction with their 2022-23 WGEA Executive Summary,
which details their organisation's performance against each Gender Equality Indicator, so that they
can compare their performance against that of their industry.
. Further comparisons of performance by industry or with other organisations, such as specific
industry peers, is possible using WGEA's Data Explorer on the WGEA website. WGEA's annual
Gender Equality Scorecard also provides industry-specific insights.
Gender Pay Gap (GPG)
The gender pay gap is the difference in average earnings between women and men in the workforce. It is
not to be confused with women and men being paid the same for the same, or comparable, job - this is
equal pay.
The gender pay gap is a useful proxy for measuring and tracking gender equality across a nation, industry or
within an organisation. Closing the gender pay gap is important for Australia's economic future and reflects
our aspiration to be an equal and fair society for all.
A positive percentage indicates that men are paid more on average than women. A negative percentage
indicates that women are paid more on average than men.
2020-21
2021-22
2022-23
Average (mean) total remuneration
14.1%
14.2%
12.7%
Median total remuneration
15.6%
16.6%
15.1%
Average (mean) base salary
11.2%
11.9%
9.9%
Median base salary
13.3%
14.7%
12.3%
Note:
· Part-time/casuals/part-year employee remuneration is annualised to full-time equivalent.
· The 2022-23 gender pay gap calculation does not include voluntary salary data submitted for CEO, Head of Business(es),
and Casual managers. It also excludes employees who did not receive any payment during the reporting period.
· Employees identified as non-binary are excluded while the Agency establishes the baseline level for this new information.
Workplace Gender Equality Agency | WGEA Mining Industry Snapshot | www.wgea.gov.au
1
Gender composition by pay quartile
The chart below divides the Mining workforce into four equal quartiles of employees by total remuneration
full-time equivalent pay. The number in each pay quartile represents the proportion of each gender.
A disproportionate concentration of men in the upper quartiles and/or women in the lower quartiles can drive
a positive gender pay gap.
Average Total Remuneration
Total Workforce
22.0
78.0
$183,902
Upper Quartile
15.8
84.2
$288,066
Upper Middle Quartile
15.3
84.7
$186,896
Lower Middle Quartile
21.7
78.3
$153,332
Lower Quartile
35.3
64.7
$107,318
0%
20%
40%
60%
80%
Women
Men
Note: Part-time/casuals/part-year employee remuneration is annualised to full-time equivalent.
Gender pay gap and composition by occupational
group
The chart below shows the average total remuneration gender pay gap and composition for manager
category and non-manager occupations in the Mining industry for 2022-23.
The aspiration is to remove the gender pay gap in favour of men or women, so a gender pay gap closer to
zero is considered better.
Managers
Women
Men
Average total
remuneration GPG
All Managers
23%
77%
3.7%
Key Management Personnel
23%
77%
0.4%
Other Executives/General Managers
23%
77%
0.2%
Senior Managers
25%
75%
4.3%
Other Managers
23%
78%
6.1%
Non-managers
Women
Men
Average total
remuneration GPG
All non-Managers
22%
78%
15.2%
Clerical and Administrative Workers
72%
28%
22.0%
Community and Personal Service
Workers
34%
66%
7.8%
Sales Workers
23%
77%
N/A
Professionals
31%
69%
14.0%
Labourers
17%
83%
16.7%
Technicians and Trade Workers
10%
90%
20.9%
Machinery Operators and Drivers
18%
82%
12.5%
Note:
· Percentages shown may not add up to 100% due to rounding of decimal place.
· Gender pay gaps are not listed for manager/occupation categories when there are less than 100 women and men employees
in a category, or there are less than five submission groups in that employee manager/occupation category.
Workplace Gender Equality Agency | WGEA Mining Industry Snapshot | www.wgea.gov.au`

const exampleAnswer = `{
  "data": {
    "KPI_Category": {
      "category_name": "Gender Pay Gap",
      "category_description": "Difference in average earnings between women and men in the workforce",
      "kpis": [
        {
          "kpi_name": "Average (mean) total remuneration",
          "unit": "percentage",
          "kpi_source": "WGEA Mining Industry Snapshot 2022-23",
          "kpi_description": "The average total remuneration gender pay gap in the mining industry.",
          "standard_values": [
            {
              "geographical_loc": "Australia",
              "country": "Australia",
              "industry": "Mining",
              "gender": "Women vs Men",
              "age_group": "All ages",
              "experience_level": "All experience levels",
              "value_avg": "12.7",
              "value_min": "12.7",
              "value_max": "14.2",
              "source_val": "WGEA Mining Industry Snapshot"
            }
          ]
        },
        {
          "kpi_name": "Median total remuneration",
          "unit": "percentage",
          "kpi_source": "WGEA Mining Industry Snapshot 2022-23",
          "kpi_description": "The median total remuneration gender pay gap in the mining industry.",
          "standard_values": [
            {
              "geographical_loc": "Australia",
              "country": "Australia",
              "industry": "Mining",
              "gender": "Women vs Men",
              "age_group": "All ages",
              "experience_level": "All experience levels",
              "value_avg": "15.1",
              "value_min": "15.1",
              "value_max": "16.6",
              "source_val": "WGEA Mining Industry Snapshot"
            }
          ]
        },
        {
          "kpi_name": "Average (mean) base salary",
          "unit": "percentage",
          "kpi_source": "WGEA Mining Industry Snapshot 2022-23",
          "kpi_description": "The average base salary gender pay gap in the mining industry.",
          "standard_values": [
            {
              "geographical_loc": "Australia",
              "country": "Australia",
              "industry": "Mining",
              "gender": "Women vs Men",
              "age_group": "All ages",
              "experience_level": "All experience levels",
              "value_avg": "9.9",
              "value_min": "9.9",
              "value_max": "11.9",
              "source_val": "WGEA Mining Industry Snapshot"
            }
          ]
        },
        {
          "kpi_name": "Median base salary",
          "unit": "percentage",
          "kpi_source": "WGEA Mining Industry Snapshot 2022-23",
          "kpi_description": "The median base salary gender pay gap in the mining industry.",
          "standard_values": [
            {
              "geographical_loc": "Australia",
              "country": "Australia",
              "industry": "Mining",
              "gender": "Women vs Men",
              "age_group": "All ages",
              "experience_level": "All experience levels",
              "value_avg": "12.3",
              "value_min": "12.3",
              "value_max": "14.7",
              "source_val": "WGEA Mining Industry Snapshot"
            }
          ]
        },
        {
          "kpi_name": "Average total remuneration by manager level",
          "unit": "percentage",
          "kpi_source": "WGEA Mining Industry Snapshot 2022-23",
          "kpi_description": "The average total remuneration gender pay gap for managers in the mining industry.",
          "standard_values": [
            {
              "geographical_loc": "Australia",
              "country": "Australia",
              "industry": "Mining",
              "gender": "Women vs Men",
              "age_group": "All ages",
              "experience_level": "Managers",
              "value_avg": "3.7",
              "value_min": "0.2",
              "value_max": "6.1",
              "source_val": "WGEA Mining Industry Snapshot"
            }
          ]
        },
        {
          "kpi_name": "Average total remuneration by non-manager level",
          "unit": "percentage",
          "kpi_source": "WGEA Mining Industry Snapshot 2022-23",
          "kpi_description": "The average total remuneration gender pay gap for non-managers in the mining industry.",
          "standard_values": [
            {
              "geographical_loc": "Australia",
              "country": "Australia",
              "industry": "Mining",
              "gender": "Women vs Men",
              "age_group": "All ages",
              "experience_level": "Non-managers",
              "value_avg": "15.2",
              "value_min": "7.8",
              "value_max": "22.0",
              "source_val": "WGEA Mining Industry Snapshot"
            }
          ]
        }
      ]
    }
  }
}`
